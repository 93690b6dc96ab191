package dates

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format for date-only fields.
const Layout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to JSON as
// "2006-01-02" and stores as a midnight-UTC timestamp.
type Date time.Time

func New(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates t to its calendar date in UTC.
func FromTime(t time.Time) Date {
	t = t.UTC()
	return New(t.Year(), t.Month(), t.Day())
}

func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) IsZero() bool { return time.Time(d).IsZero() }

func (d Date) String() string { return time.Time(d).Format(Layout) }

func (d Date) Before(other Date) bool { return time.Time(d).Before(time.Time(other)) }

func (d Date) After(other Date) bool { return time.Time(d).After(time.Time(other)) }

func (d Date) Equal(other Date) bool { return time.Time(d).Equal(time.Time(other)) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := Parse(value)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s", value, Layout)
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// scanLayouts covers the textual forms the sqlite driver hands back for
// columns written through Value.
var scanLayouts = []string{
	Layout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = FromTime(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into dates.Date", value)
	}
}

func (d *Date) scanString(value string) error {
	for _, layout := range scanLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			*d = FromTime(t)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as dates.Date", value)
}
