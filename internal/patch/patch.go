package patch

import (
	"bytes"
	"encoding/json"
)

// Field tracks JSON presence independently of the value: a patch field can
// be absent, explicitly null, or set to a value. This keeps "not supplied"
// distinguishable from "explicitly cleared".
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Present reports whether the field carries a non-null value.
func (f Field[T]) Present() bool { return f.Set && !f.Null }

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}
