package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMixedTagsIsAmbiguous(t *testing.T) {
	got := FromInt(3).Add(FromFloat(2.5))

	assert.Equal(t, Ambiguous, got.Kind())
	assert.Equal(t, int64(3+2), got.Int())
	assert.Equal(t, 5.5, got.Float())
}

func TestAmbiguousDefersToOtherOperand(t *testing.T) {
	amb := MustParse("10")

	got := amb.Add(FromInt(5))
	assert.Equal(t, Integer, got.Kind())
	assert.Equal(t, int64(15), got.Int())

	got = amb.Mul(FromFloat(0.5))
	assert.Equal(t, Float, got.Kind())
	assert.Equal(t, 5.0, got.Float())

	got = amb.Sub(MustParse("4"))
	assert.Equal(t, Ambiguous, got.Kind())
	assert.Equal(t, int64(6), got.Int())
	assert.Equal(t, 6.0, got.Float())
}

func TestSameTagRunsOneRepresentation(t *testing.T) {
	got := FromInt(7).Sub(FromInt(10))
	assert.Equal(t, Integer, got.Kind())
	assert.Equal(t, int64(-3), got.Int())
	assert.Equal(t, -3.0, got.Float())

	got = FromFloat(1.5).Mul(FromFloat(3))
	assert.Equal(t, Float, got.Kind())
	assert.Equal(t, 4.5, got.Float())
	assert.Equal(t, int64(4), got.Int())
}

func TestDiv(t *testing.T) {
	got, err := FromInt(7).Div(FromInt(2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Int())

	got, err = FromFloat(7).Div(FromFloat(2))
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.Float())

	got, err = FromFloat(1).Div(FromFloat(0))
	require.NoError(t, err)
	assert.True(t, got.IsInf())

	_, err = FromInt(1).Div(Zero)
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = MustParse("1").Div(FromFloat(0.5))
	require.NoError(t, err)

	_, err = FromInt(1).Div(FromFloat(0.5))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestMod(t *testing.T) {
	got, err := FromInt(-7).Mod(FromInt(3))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got.Int())

	got, err = FromFloat(7.5).Mod(FromFloat(2))
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.Float())

	_, err = FromInt(7).Mod(Zero)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestUnary(t *testing.T) {
	assert.Equal(t, int64(-4), FromInt(4).Neg().Int())
	assert.Equal(t, -0.5, FromFloat(0.5).Neg().Float())
	assert.Equal(t, int64(5), FromInt(4).Inc().Int())
	assert.Equal(t, 1.5, FromFloat(2.5).Dec().Float())
	assert.Equal(t, Float, FromFloat(2.5).Dec().Kind())

	neg := MustParse("-3").Neg()
	assert.Equal(t, Ambiguous, neg.Kind())
	assert.Equal(t, int64(3), neg.Int())
	assert.Equal(t, 3.0, neg.Float())

	assert.Equal(t, int64(9), FromInt(-9).Abs().Int())
	assert.Equal(t, 9.5, FromFloat(-9.5).Abs().Float())
}

func TestPredicates(t *testing.T) {
	assert.Equal(t, -1, FromInt(-2).Sign())
	assert.Equal(t, 1, FromFloat(0.1).Sign())
	assert.Equal(t, 0, Zero.Sign())
	assert.True(t, FromFloat(-1).IsNegative())
	assert.True(t, FromInt(1).IsPositive())
	assert.True(t, FromFloat(math.NaN()).IsNaN())
	assert.False(t, FromInt(0).IsNaN())
	assert.True(t, FromInt(4).IsEvenInteger())
	assert.True(t, FromFloat(-3).IsOddInteger())
	assert.False(t, FromFloat(2.5).IsEvenInteger())
	assert.False(t, FromFloat(2.5).IsOddInteger())
}

func TestMinMax(t *testing.T) {
	a, b := FromInt(3), FromFloat(3.5)
	assert.True(t, Max(a, b).Equal(b))
	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, MaxMagnitude(FromInt(-5), FromInt(4)).Equal(FromInt(-5)))
	assert.True(t, MinMagnitude(FromInt(-5), FromInt(4)).Equal(FromInt(4)))
}
