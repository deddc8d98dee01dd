// Package optional provides a JSON-aware field that tells apart a key that was
// left out of a payload, a key sent as null, and a key sent with a value.
package optional

import (
	"bytes"
	"encoding"
	"encoding/json"
)

type Value[T any] struct {
	value T
	set   bool
	valid bool
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true, valid: true}
}

// Null returns a Value that was supplied explicitly as null.
func Null[T any]() Value[T] {
	return Value[T]{set: true}
}

// IsSet reports whether the field was present at all, null included.
func (v Value[T]) IsSet() bool {
	return v.set
}

// IsNull reports whether the field was present and null.
func (v Value[T]) IsNull() bool {
	return v.set && !v.valid
}

// Get returns the held value and whether there is one.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.valid
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	v.valid = false

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	// An empty string for a text-encoded type (e.g. a UUID) means "no value".
	if bytes.Equal(trimmed, []byte(`""`)) {
		if _, ok := any(&v.value).(encoding.TextUnmarshaler); ok {
			return nil
		}
	}

	if err := json.Unmarshal(trimmed, &v.value); err != nil {
		return err
	}
	v.valid = true
	return nil
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
