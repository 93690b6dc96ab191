package validation

import "fmt"

// FieldError describes a single failed constraint on an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors accumulates field-level validation failures. Services return it
// before touching the store; the HTTP layer renders it as a 422 body.
type Errors struct {
	Fields []FieldError
}

func New(field, message string) *Errors {
	e := &Errors{}
	e.Add(field, message)
	return e
}

func Newf(field, format string, args ...any) *Errors {
	return New(field, fmt.Sprintf(format, args...))
}

func (e *Errors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *Errors) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Err returns nil when no failures were recorded.
func (e *Errors) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *Errors) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	return fmt.Sprintf("validation error: %s %s", e.Fields[0].Field, e.Fields[0].Message)
}
