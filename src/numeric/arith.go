package numeric

import "math"

// resolve picks the representation a binary operation runs on. An Ambiguous
// operand defers to the other one; Integer against Float runs both.
func resolve(a, b Kind) Kind {
	switch {
	case a == Ambiguous:
		return b
	case b == Ambiguous:
		return a
	case a != b:
		return Ambiguous
	}
	return a
}

func apply(k Kind, a, b Number, intOp func(x, y int64) int64, floatOp func(x, y float64) float64) Number {
	switch k {
	case Integer:
		return FromInt(intOp(a.i, b.i))
	case Float:
		return FromFloat(floatOp(a.f, b.f))
	}
	return FromBoth(intOp(a.i, b.i), floatOp(a.f, b.f))
}

func applyUnary(n Number, intOp func(int64) int64, floatOp func(float64) float64) Number {
	switch n.kind {
	case Integer:
		return FromInt(intOp(n.i))
	case Float:
		return FromFloat(floatOp(n.f))
	}
	return FromBoth(intOp(n.i), floatOp(n.f))
}

func (n Number) Add(o Number) Number {
	return apply(resolve(n.kind, o.kind), n, o,
		func(x, y int64) int64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

func (n Number) Sub(o Number) Number {
	return apply(resolve(n.kind, o.kind), n, o,
		func(x, y int64) int64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

func (n Number) Mul(o Number) Number {
	return apply(resolve(n.kind, o.kind), n, o,
		func(x, y int64) int64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div divides n by o. Float division by zero follows IEEE 754; it is an
// error only when the integer representation takes part.
func (n Number) Div(o Number) (Number, error) {
	k := resolve(n.kind, o.kind)
	if k != Float && o.i == 0 {
		return Number{}, ErrDivideByZero
	}
	return apply(k, n, o,
		func(x, y int64) int64 { return x / y },
		func(x, y float64) float64 { return x / y }), nil
}

// Mod is the remainder of n / o with the sign of n, like Go's % operator and
// math.Mod.
func (n Number) Mod(o Number) (Number, error) {
	k := resolve(n.kind, o.kind)
	if k != Float && o.i == 0 {
		return Number{}, ErrDivideByZero
	}
	return apply(k, n, o,
		func(x, y int64) int64 { return x % y },
		math.Mod), nil
}

func (n Number) Neg() Number {
	return applyUnary(n,
		func(x int64) int64 { return -x },
		func(x float64) float64 { return -x })
}

// Inc and Dec keep the tag of n.
func (n Number) Inc() Number {
	return applyUnary(n,
		func(x int64) int64 { return x + 1 },
		func(x float64) float64 { return x + 1 })
}

func (n Number) Dec() Number {
	return applyUnary(n,
		func(x int64) int64 { return x - 1 },
		func(x float64) float64 { return x - 1 })
}

// Abs wraps for math.MinInt64 the same way -x does.
func (n Number) Abs() Number {
	return applyUnary(n,
		func(x int64) int64 {
			if x < 0 {
				return -x
			}
			return x
		},
		math.Abs)
}

// Sign returns -1, 0 or 1. NaN reports 0.
func (n Number) Sign() int {
	if n.kind == Float {
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		}
		return 0
	}
	switch {
	case n.i < 0:
		return -1
	case n.i > 0:
		return 1
	}
	return 0
}

func (n Number) IsZero() bool {
	if n.kind == Float {
		return n.f == 0
	}
	return n.i == 0
}

func (n Number) IsNegative() bool {
	return n.Sign() < 0
}

func (n Number) IsPositive() bool {
	return n.Sign() > 0
}

func (n Number) IsNaN() bool {
	return n.kind != Integer && math.IsNaN(n.f)
}

func (n Number) IsInf() bool {
	return n.kind != Integer && math.IsInf(n.f, 0)
}

// IsEvenInteger is false for non-integral floats.
func (n Number) IsEvenInteger() bool {
	if n.kind == Float {
		return isIntegral(n.f) && math.Mod(n.f, 2) == 0
	}
	return n.i%2 == 0
}

func (n Number) IsOddInteger() bool {
	if n.kind == Float {
		return isIntegral(n.f) && math.Abs(math.Mod(n.f, 2)) == 1
	}
	return n.i%2 != 0
}

// Max returns the larger of a and b under Compare. Ties return a.
func Max(a, b Number) Number {
	if a.Compare(b) < 0 {
		return b
	}
	return a
}

func Min(a, b Number) Number {
	if a.Compare(b) > 0 {
		return b
	}
	return a
}

func MaxMagnitude(a, b Number) Number {
	if a.Abs().Compare(b.Abs()) < 0 {
		return b
	}
	return a
}

func MinMagnitude(a, b Number) Number {
	if a.Abs().Compare(b.Abs()) > 0 {
		return b
	}
	return a
}

func isIntegral(f float64) bool {
	return !math.IsInf(f, 0) && math.Round(f) == f
}
