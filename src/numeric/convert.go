package numeric

import (
	"fmt"
	"math"
	"time"
	"unicode"
)

// Narrowing conversions saturate at the bounds of the target type. Integer
// and Ambiguous values convert from the integer field, Float values from the
// truncated float field. NaN converts to 0.

func (n Number) Int8() int8 {
	return int8(n.clampSigned(math.MinInt8, math.MaxInt8))
}

func (n Number) Int16() int16 {
	return int16(n.clampSigned(math.MinInt16, math.MaxInt16))
}

func (n Number) Int32() int32 {
	return int32(n.clampSigned(math.MinInt32, math.MaxInt32))
}

func (n Number) Int64() int64 {
	return n.clampSigned(math.MinInt64, math.MaxInt64)
}

func (n Number) Uint8() uint8 {
	return uint8(n.clampUnsigned(math.MaxUint8))
}

func (n Number) Uint16() uint16 {
	return uint16(n.clampUnsigned(math.MaxUint16))
}

func (n Number) Uint32() uint32 {
	return uint32(n.clampUnsigned(math.MaxUint32))
}

func (n Number) Uint64() uint64 {
	return n.clampUnsigned(math.MaxUint64)
}

// Float32 saturates to ±Inf when the magnitude exceeds the float32 range.
func (n Number) Float32() float32 {
	if n.kind == Integer {
		return float32(n.i)
	}
	switch {
	case n.f > math.MaxFloat32:
		return float32(math.Inf(1))
	case n.f < -math.MaxFloat32:
		return float32(math.Inf(-1))
	}
	return float32(n.f)
}

func (n Number) Float64() float64 {
	if n.kind == Integer {
		return float64(n.i)
	}
	return n.f
}

// Rune converts to a Unicode code point. Non-integral floats and values
// outside the code point range are an ErrInvalidCast.
func (n Number) Rune() (rune, error) {
	v := n.i
	if n.kind == Float {
		if !isIntegral(n.f) {
			return 0, fmt.Errorf("%w: %s is not integral", ErrInvalidCast, n)
		}
		v = truncInt64(n.f)
	}
	if v < 0 || v > unicode.MaxRune {
		return 0, fmt.Errorf("%w: %s is not a code point", ErrInvalidCast, n)
	}
	return rune(v), nil
}

// Time always fails. A bare number does not say which epoch or unit it is in.
func (n Number) Time() (time.Time, error) {
	return time.Time{}, fmt.Errorf("%w: %s to time.Time", ErrInvalidCast, n)
}

func (n Number) clampSigned(lo, hi int64) int64 {
	if n.kind == Float {
		switch {
		case math.IsNaN(n.f):
			return 0
		case n.f <= float64(lo):
			return lo
		case n.f >= float64(hi):
			return hi
		}
		return int64(n.f)
	}
	return min(max(n.i, lo), hi)
}

func (n Number) clampUnsigned(hi uint64) uint64 {
	if n.kind == Float {
		switch {
		case math.IsNaN(n.f), n.f <= 0:
			return 0
		case n.f >= float64(hi):
			return hi
		}
		return uint64(n.f)
	}
	if n.i <= 0 {
		return 0
	}
	return min(uint64(n.i), hi)
}

// Convert is the saturating conversion to any type in Real.
func Convert[T Real](n Number) T {
	var zero T
	switch any(zero).(type) {
	case int:
		return T(n.clampSigned(math.MinInt, math.MaxInt))
	case int8:
		return T(n.Int8())
	case int16:
		return T(n.Int16())
	case int32:
		return T(n.Int32())
	case int64:
		return T(n.Int64())
	case uint:
		return T(n.clampUnsigned(math.MaxUint))
	case uint8:
		return T(n.Uint8())
	case uint16:
		return T(n.Uint16())
	case uint32:
		return T(n.Uint32())
	case uint64:
		return T(n.Uint64())
	case uintptr:
		return T(n.clampUnsigned(uint64(^uintptr(0))))
	case float32:
		return T(n.Float32())
	}
	return T(n.Float64())
}

// ConvertChecked is Convert that returns ErrOverflow instead of saturating
// and ErrInvalidCast when a non-integral float would be truncated.
func ConvertChecked[T Real](n Number) (T, error) {
	v := Convert[T](n)
	var zero T
	switch any(zero).(type) {
	case float32:
		if !n.IsInf() && math.IsInf(float64(v), 0) {
			return v, fmt.Errorf("%w: %s as %T", ErrOverflow, n, zero)
		}
		return v, nil
	case float64:
		return v, nil
	}
	if n.kind == Float {
		if !isIntegral(n.f) {
			return v, fmt.Errorf("%w: %s is not integral", ErrInvalidCast, n)
		}
		// Range is checked on the float itself: the clamped bound can round
		// back to the input, as float64(math.MaxInt64) == 2^63 does.
		if !fitsFloat[T](n.f) {
			return v, fmt.Errorf("%w: %s as %T", ErrOverflow, n, zero)
		}
		return v, nil
	}
	if !EqualTo(n, v) {
		return v, fmt.Errorf("%w: %s as %T", ErrOverflow, n, zero)
	}
	return v, nil
}

// fitsFloat reports whether an integral f lies in the range of the integer
// type T.
func fitsFloat[T Real](f float64) bool {
	var zero T
	switch any(zero).(type) {
	case int:
		return signedFits(f, math.MinInt)
	case int8:
		return signedFits(f, math.MinInt8)
	case int16:
		return signedFits(f, math.MinInt16)
	case int32:
		return signedFits(f, math.MinInt32)
	case int64:
		return signedFits(f, math.MinInt64)
	case uint:
		return unsignedFits(f, math.MaxUint)
	case uint8:
		return unsignedFits(f, math.MaxUint8)
	case uint16:
		return unsignedFits(f, math.MaxUint16)
	case uint32:
		return unsignedFits(f, math.MaxUint32)
	case uint64:
		return unsignedFits(f, math.MaxUint64)
	case uintptr:
		return unsignedFits(f, uint64(^uintptr(0)))
	}
	return true
}

// Both bounds are powers of two and so exact as floats.
func signedFits(f float64, lo int64) bool {
	return f >= float64(lo) && f < -float64(lo)
}

func unsignedFits(f float64, hi uint64) bool {
	return f >= 0 && f < 2*float64(hi/2+1)
}
