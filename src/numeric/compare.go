package numeric

import (
	"cmp"
	"fmt"
)

// Real is the closed set of primitive types a Number converts to and
// compares against.
type Real interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// Equal is strict: an Integer value never equals a Float value, even when
// they hold the same quantity. Use EqualCast to allow the cast.
func (n Number) Equal(o Number) bool {
	return n.EqualCast(o, false)
}

func (n Number) EqualCast(o Number, allowCast bool) bool {
	switch {
	case n.IsInteger() && o.IsInteger():
		return n.i == o.i
	case n.IsDouble() && o.IsDouble():
		return n.f == o.f
	case allowCast:
		return n.f == o.f
	}
	return false
}

// Compare orders n against o, casting between representations when the
// tags differ. It returns -1, 0 or +1. NaN sorts below every other float.
func (n Number) Compare(o Number) int {
	return n.CompareCast(o, true)
}

// CompareCast is Compare with an explicit cast policy. When the tags differ
// and the cast is not allowed the result is -1.
func (n Number) CompareCast(o Number, allowCast bool) int {
	switch {
	case n.IsInteger() && o.IsInteger():
		return cmp.Compare(n.i, o.i)
	case n.IsDouble() && o.IsDouble():
		return cmp.Compare(n.f, o.f)
	case allowCast:
		return cmp.Compare(n.f, o.f)
	}
	return -1
}

// EqualInt compares against a signed integer, allowing a cast from the
// float representation.
func (n Number) EqualInt(v int64) bool {
	return n.EqualIntCast(v, true)
}

// EqualIntCast compares against a signed integer. A Float value whose float
// is not integral only compares when allowCast is set.
func (n Number) EqualIntCast(v int64, allowCast bool) bool {
	if n.IsInteger() {
		return n.i == v
	}
	if !allowCast && !isIntegral(n.f) {
		return false
	}
	return n.f == float64(v)
}

func (n Number) CompareInt(v int64) int {
	return n.CompareIntCast(v, true)
}

func (n Number) CompareIntCast(v int64, allowCast bool) int {
	if n.IsInteger() {
		return cmp.Compare(n.i, v)
	}
	if !allowCast && !isIntegral(n.f) {
		return -1
	}
	return cmp.Compare(n.f, float64(v))
}

// EqualUint compares against an unsigned integer. Negative values are never
// equal to any unsigned value.
func (n Number) EqualUint(v uint64) bool {
	return n.EqualUintCast(v, true)
}

func (n Number) EqualUintCast(v uint64, allowCast bool) bool {
	if n.IsInteger() {
		return n.i >= 0 && uint64(n.i) == v
	}
	if n.f < 0 {
		return false
	}
	if !allowCast && !isIntegral(n.f) {
		return false
	}
	return n.f == float64(v)
}

// CompareUint orders n against an unsigned integer. Negative values are
// always less.
func (n Number) CompareUint(v uint64) int {
	return n.CompareUintCast(v, true)
}

func (n Number) CompareUintCast(v uint64, allowCast bool) int {
	if n.IsInteger() {
		if n.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(n.i), v)
	}
	if n.f < 0 {
		return -1
	}
	if !allowCast && !isIntegral(n.f) {
		return -1
	}
	return cmp.Compare(n.f, float64(v))
}

func (n Number) EqualFloat(v float64) bool {
	return n.EqualFloatCast(v, true)
}

// EqualFloatCast compares against a float. An Integer value only compares
// with a non-integral float when allowCast is set.
func (n Number) EqualFloatCast(v float64, allowCast bool) bool {
	if n.IsDouble() {
		return n.f == v
	}
	if !allowCast && !isIntegral(v) {
		return false
	}
	return float64(n.i) == v
}

func (n Number) CompareFloat(v float64) int {
	return n.CompareFloatCast(v, true)
}

func (n Number) CompareFloatCast(v float64, allowCast bool) int {
	if n.IsDouble() {
		return cmp.Compare(n.f, v)
	}
	if !allowCast && !isIntegral(v) {
		return -1
	}
	return cmp.Compare(float64(n.i), v)
}

// CompareTo orders n against a primitive, casting as needed.
func CompareTo[T Real](n Number, v T) int {
	switch x := any(v).(type) {
	case uint:
		return n.CompareUint(uint64(x))
	case uint8:
		return n.CompareUint(uint64(x))
	case uint16:
		return n.CompareUint(uint64(x))
	case uint32:
		return n.CompareUint(uint64(x))
	case uint64:
		return n.CompareUint(x)
	case uintptr:
		return n.CompareUint(uint64(x))
	case float32:
		return n.CompareFloat(float64(x))
	case float64:
		return n.CompareFloat(x)
	}
	return n.CompareInt(signed(v))
}

// EqualTo reports whether n equals a primitive, casting as needed.
func EqualTo[T Real](n Number, v T) bool {
	switch x := any(v).(type) {
	case uint:
		return n.EqualUint(uint64(x))
	case uint8:
		return n.EqualUint(uint64(x))
	case uint16:
		return n.EqualUint(uint64(x))
	case uint32:
		return n.EqualUint(uint64(x))
	case uint64:
		return n.EqualUint(x)
	case uintptr:
		return n.EqualUint(uint64(x))
	case float32:
		return n.EqualFloat(float64(x))
	case float64:
		return n.EqualFloat(x)
	}
	return n.EqualInt(signed(v))
}

func signed[T Real](v T) int64 {
	switch x := any(v).(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	}
	panic(fmt.Sprintf("numeric: %T is not a signed integer", v))
}

// CompareAny is the boundary entry point for values whose type is only known
// at run time. It accepts a Number or any type in Real.
func (n Number) CompareAny(v any) (int, error) {
	switch x := v.(type) {
	case Number:
		return n.Compare(x), nil
	case *Number:
		if x == nil {
			return 1, nil
		}
		return n.Compare(*x), nil
	case int:
		return CompareTo(n, x), nil
	case int8:
		return CompareTo(n, x), nil
	case int16:
		return CompareTo(n, x), nil
	case int32:
		return CompareTo(n, x), nil
	case int64:
		return CompareTo(n, x), nil
	case uint:
		return CompareTo(n, x), nil
	case uint8:
		return CompareTo(n, x), nil
	case uint16:
		return CompareTo(n, x), nil
	case uint32:
		return CompareTo(n, x), nil
	case uint64:
		return CompareTo(n, x), nil
	case uintptr:
		return CompareTo(n, x), nil
	case float32:
		return CompareTo(n, x), nil
	case float64:
		return CompareTo(n, x), nil
	}
	return 0, fmt.Errorf("%w %T: expected Number, a signed or unsigned integer, or a float", ErrUnsupportedType, v)
}

// EqualAny is false for values outside the supported set.
func (n Number) EqualAny(v any) bool {
	switch x := v.(type) {
	case Number:
		return n.Equal(x)
	case *Number:
		return x != nil && n.Equal(*x)
	}
	c, err := n.CompareAny(v)
	return err == nil && c == 0 && !n.IsNaN()
}

// Hash digests the authoritative fields. Ambiguous values digest both, so a
// value that EqualCast reports equal under a different tag can hash
// differently.
func (n Number) Hash() uint64 {
	return hashNumber(n)
}
