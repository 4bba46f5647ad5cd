package optional

import "encoding/json"

// Value tracks whether a JSON field was absent, explicitly null or carried a value.
type Value[T any] struct {
	set   bool
	null  bool
	value T
}

func Of[T any](v T) Value[T] { return Value[T]{set: true, value: v} }

func Null[T any]() Value[T] { return Value[T]{set: true, null: true} }

func (v Value[T]) IsSet() bool  { return v.set }
func (v Value[T]) IsNull() bool { return v.set && v.null }

// Get returns the value and true only when the field was supplied with a non-null value.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set && !v.null
}

// Ptr returns nil for absent or null fields.
func (v Value[T]) Ptr() *T {
	if !v.set || v.null {
		return nil
	}
	out := v.value
	return &out
}

func (v *Value[T]) UnmarshalJSON(b []byte) error {
	v.set = true
	if string(b) == "null" {
		var zero T
		v.null = true
		v.value = zero
		return nil
	}
	v.null = false

	return json.Unmarshal(b, &v.value)
}
