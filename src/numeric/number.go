// Package numeric provides Number, a value that holds an integer, a float, or
// both at once. JSON numbers do not say whether they are integers, so the
// vendor payloads decode into Number and callers ask for the view they need.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Kind tells which representation of a Number is authoritative.
type Kind uint8

const (
	// Integer means the int64 field is authoritative and the float field is
	// derived from it.
	Integer Kind = iota
	// Float means the float64 field is authoritative and the int64 field is
	// its truncation.
	Float
	// Ambiguous means both fields were produced independently, usually by
	// text that parsed as both an integer and a float.
	Ambiguous
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Ambiguous:
		return "ambiguous"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is an immutable integer/float value. The zero value is the integer 0.
type Number struct {
	i    int64
	f    float64
	kind Kind
}

var (
	Zero = FromInt(0)
	One  = FromInt(1)
)

func FromInt(v int64) Number {
	return Number{i: v, f: float64(v), kind: Integer}
}

// FromUint converts an unsigned value. Values above math.MaxInt64 cannot be
// held by the integer field, so they are stored as floats and round to the
// nearest float64: 1<<63+1 reads back as 1<<63.
func FromUint(v uint64) Number {
	if v > math.MaxInt64 {
		return Number{i: math.MaxInt64, f: float64(v), kind: Float}
	}
	return FromInt(int64(v))
}

func FromFloat(v float64) Number {
	return Number{i: truncInt64(v), f: v, kind: Float}
}

// FromBoth builds an Ambiguous value from two independently obtained
// representations. Neither is derived from the other.
func FromBoth(i int64, f float64) Number {
	return Number{i: i, f: f, kind: Ambiguous}
}

// Of converts any primitive numeric value, tagging integers as Integer and
// floats as Float.
func Of[T Real](v T) Number {
	switch x := any(v).(type) {
	case int:
		return FromInt(int64(x))
	case int8:
		return FromInt(int64(x))
	case int16:
		return FromInt(int64(x))
	case int32:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint:
		return FromUint(uint64(x))
	case uint8:
		return FromUint(uint64(x))
	case uint16:
		return FromUint(uint64(x))
	case uint32:
		return FromUint(uint64(x))
	case uint64:
		return FromUint(x)
	case uintptr:
		return FromUint(uint64(x))
	case float32:
		return FromFloat(float64(x))
	case float64:
		return FromFloat(x)
	}
	panic("numeric: unreachable")
}

func (n Number) Kind() Kind {
	return n.kind
}

// IsInteger reports whether integer semantics apply (Integer or Ambiguous).
func (n Number) IsInteger() bool {
	return n.kind != Float
}

// IsDouble reports whether float semantics apply (Float or Ambiguous).
func (n Number) IsDouble() bool {
	return n.kind != Integer
}

func (n Number) IsIntegerAndDouble() bool {
	return n.kind == Ambiguous
}

// Int returns the raw integer field. For Float values this is the truncated
// float; use Int64 for a saturating conversion.
func (n Number) Int() int64 {
	return n.i
}

// Float returns the raw float field.
func (n Number) Float() float64 {
	return n.f
}

// String formats the value so that Parse gives it back. Float values always
// carry a decimal point or exponent; Ambiguous values print as integers when
// both fields agree.
func (n Number) String() string {
	switch n.kind {
	case Integer:
		return strconv.FormatInt(n.i, 10)
	case Float:
		return formatFloat(n.f)
	default:
		if float64(n.i) == n.f {
			return strconv.FormatInt(n.i, 10)
		}
		return formatFloat(n.f)
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// truncInt64 truncates toward zero, saturating at the int64 range. NaN
// becomes 0.
func truncInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
