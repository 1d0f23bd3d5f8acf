package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrFormat          = errors.New("numeric: invalid number format")
	ErrUnsupportedType = errors.New("numeric: unsupported comparison type")
	ErrInvalidCast     = errors.New("numeric: invalid cast")
	ErrOverflow        = errors.New("numeric: value out of range")
	ErrDivideByZero    = errors.New("numeric: integer division by zero")
)

// ParseError is returned by Parse when the text is neither an integer nor a
// float. It carries both underlying failures.
type ParseError struct {
	Input    string
	IntErr   error
	FloatErr error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("numeric: could not parse %q: as integer: %v; as float: %v", e.Input, e.IntErr, e.FloatErr)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrFormat, e.IntErr, e.FloatErr}
}

// Parse reads a decimal integer or float. Text that is valid as both yields
// an Ambiguous Number holding both parses verbatim.
func Parse(s string) (Number, error) {
	text := strings.TrimSpace(s)

	i, intErr := strconv.ParseInt(text, 10, 64)
	f, floatErr := parseFinite(text)

	switch {
	case intErr == nil && floatErr == nil:
		return FromBoth(i, f), nil
	case intErr == nil:
		return FromInt(i), nil
	case floatErr == nil:
		return FromFloat(f), nil
	}
	return Number{}, &ParseError{Input: s, IntErr: intErr, FloatErr: floatErr}
}

// TryParse is Parse without the error detail.
func TryParse(s string) (Number, bool) {
	n, err := Parse(s)
	return n, err == nil
}

// MustParse panics if s is not a number. Meant for literals in tests and
// package-level variables.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// parseFinite rejects NaN, infinities, values whose magnitude overflows
// float64 and hexadecimal floats, none of which can appear in a JSON number.
func parseFinite(s string) (float64, error) {
	if isHex(s) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return f, nil
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
