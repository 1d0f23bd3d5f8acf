// Package optional separates "field not sent" from "field sent as null or
// zero". Request payloads use Optional fields with the omitzero JSON option
// so that unspecified fields are left out of the body.
package optional

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// ErrUnspecified is the panic value of Value on an unspecified Optional.
var ErrUnspecified = errors.New("optional: no value set")

// Specifier is implemented by every Optional instantiation.
type Specifier interface {
	IsSpecified() bool
}

// Optional holds a value of T and whether it was specified. The zero value is
// unspecified.
type Optional[T any] struct {
	value     T
	specified bool
}

func Unspecified[T any]() Optional[T] {
	return Optional[T]{}
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, specified: true}
}

// FromPtr maps nil to unspecified and a non-nil pointer to its pointee.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

func (o Optional[T]) IsSpecified() bool {
	return o.specified
}

// Value panics with ErrUnspecified when o is unspecified. Check IsSpecified
// or use Get when that is possible.
func (o Optional[T]) Value() T {
	if !o.specified {
		panic(ErrUnspecified)
	}
	return o.value
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.specified
}

// ValueOrZero returns the zero value of T when o is unspecified.
func (o Optional[T]) ValueOrZero() T {
	if !o.specified {
		var zero T
		return zero
	}
	return o.value
}

func (o Optional[T]) ValueOr(fallback T) T {
	if !o.specified {
		return fallback
	}
	return o.value
}

// Or returns o if it is specified and other otherwise.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.specified {
		return o
	}
	return other
}

// Ptr returns a pointer to a copy of the value, or nil.
func (o Optional[T]) Ptr() *T {
	if !o.specified {
		return nil
	}
	v := o.value
	return &v
}

// Map applies fn to the value when o is specified.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.specified {
		return Optional[U]{}
	}
	return Some(fn(o.value))
}

// IsZero reports whether o is unspecified. encoding/json consults it for
// fields tagged omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.specified
}

// Equal reports whether both are unspecified, or both are specified with
// equal values. Values that have an Equal(T) bool method are compared with
// it; others with reflect.DeepEqual.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.specified != other.specified {
		return false
	}
	if !o.specified {
		return true
	}
	return valuesEqual(o.value, other.value)
}

// EqualValue compares against an untyped value. nil equals an unspecified
// Optional; an Optional[T] compares with Equal; a T compares with the value.
func (o Optional[T]) EqualValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return !o.specified
	case Optional[T]:
		return o.Equal(x)
	case *Optional[T]:
		if x == nil {
			return !o.specified
		}
		return o.Equal(*x)
	case T:
		return o.specified && valuesEqual(o.value, x)
	}
	return false
}

func valuesEqual[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func (o Optional[T]) String() string {
	if !o.specified {
		return "<unspecified>"
	}
	return fmt.Sprint(o.value)
}

// MarshalJSON writes the value, or null when unspecified. Struct fields
// should carry omitzero so that unspecified fields are not written at all.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.specified {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON marks o as specified, including for a literal null, which
// leaves the zero value of T. Absent fields never reach it and stay
// unspecified.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	var v T
	if !bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
	}
	o.value = v
	o.specified = true
	return nil
}
