// Package optional provides a JSON field wrapper that remembers whether the field was present
// in the payload and whether it was an explicit null.
package optional

import (
	"bytes"
	"encoding/json"
)

var null = []byte("null")

// Field holds a value decoded from JSON together with its presence state.
// The zero value is an absent field.
type Field[T any] struct {
	Value T
	Set   bool // the key was present in the payload
	Null  bool // the key was present with a null value
}

// Of returns a present, non-null Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Nil returns a present Field holding an explicit null.
func Nil[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Present reports whether the field carries a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// Ptr returns a pointer to the value, or nil if the field is absent or null.
func (f Field[T]) Ptr() *T {
	if !f.Present() {
		return nil
	}
	v := f.Value
	return &v
}

// UnmarshalJSON is only invoked by encoding/json when the key exists in the object.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), null) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON writes null for absent or null fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present() {
		return null, nil
	}
	return json.Marshal(f.Value)
}
