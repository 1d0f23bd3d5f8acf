package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIsStrictCompareIsPermissive(t *testing.T) {
	a, b := FromInt(5), FromInt(5)
	assert.True(t, a.Equal(b))

	c := FromFloat(5.0)
	assert.False(t, a.Equal(c))
	assert.Equal(t, 0, a.Compare(c))
	assert.True(t, a.EqualCast(c, true))
	assert.Equal(t, -1, a.CompareCast(c, false))
}

func TestAmbiguousComparesUnderEitherTag(t *testing.T) {
	amb := MustParse("5")
	assert.True(t, amb.Equal(FromInt(5)))
	assert.True(t, amb.Equal(FromFloat(5)))
	assert.Equal(t, 0, amb.Compare(FromFloat(5)))
	assert.Equal(t, 1, amb.Compare(FromInt(4)))
}

func TestCompareNaN(t *testing.T) {
	nan := FromFloat(math.NaN())
	assert.Equal(t, -1, nan.Compare(FromFloat(0)))
	assert.Equal(t, 0, nan.Compare(FromFloat(math.NaN())))
	assert.False(t, nan.EqualFloat(math.NaN()))
	assert.False(t, nan.EqualAny(math.NaN()))
}

func TestCompareAgainstSignedInteger(t *testing.T) {
	assert.True(t, FromInt(9).EqualInt(9))
	assert.True(t, FromFloat(9).EqualInt(9))
	assert.True(t, FromFloat(9).EqualIntCast(9, false))

	// Non-integral floats only compare when the cast is allowed.
	assert.Equal(t, 1, FromFloat(9.5).CompareInt(9))
	assert.Equal(t, -1, FromFloat(9.5).CompareIntCast(9, false))
	assert.False(t, FromFloat(9.5).EqualIntCast(9, false))
}

func TestCompareAgainstUnsigned(t *testing.T) {
	assert.Equal(t, -1, FromInt(-1).CompareUint(0))
	assert.Equal(t, -1, FromInt(-1).CompareUint(math.MaxUint64))
	assert.False(t, FromInt(-1).EqualUint(math.MaxUint64))
	assert.Equal(t, -1, FromFloat(-0.5).CompareUint(0))
	assert.Equal(t, 1, FromInt(math.MaxInt64).CompareUint(3))
	assert.Equal(t, -1, FromInt(math.MaxInt64).CompareUint(math.MaxUint64))
	assert.True(t, FromInt(17).EqualUint(17))
}

func TestCompareAgainstFloat(t *testing.T) {
	assert.True(t, FromInt(2).EqualFloat(2))
	assert.Equal(t, -1, FromInt(2).CompareFloat(2.5))
	assert.Equal(t, -1, FromInt(3).CompareFloatCast(2.5, false))
	assert.False(t, FromInt(2).EqualFloatCast(2.5, false))
	assert.True(t, FromInt(2).EqualFloatCast(2, false))
}

func TestGenericCompare(t *testing.T) {
	n := FromInt(200)
	assert.Equal(t, 1, CompareTo(n, int8(100)))
	assert.Equal(t, 0, CompareTo(n, uint8(200)))
	assert.Equal(t, -1, CompareTo(n, float32(200.5)))
	assert.True(t, EqualTo(n, uint64(200)))
	assert.True(t, EqualTo(n, 200))
	assert.False(t, EqualTo(n, 200.25))
}

func TestCompareAny(t *testing.T) {
	n := FromInt(10)

	c, err := n.CompareAny(int16(11))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = n.CompareAny(FromFloat(9.5))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = n.CompareAny("10")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "string")

	assert.True(t, n.EqualAny(uint(10)))
	assert.False(t, n.EqualAny("10"))
	assert.False(t, n.EqualAny(FromFloat(10)))
}

func TestHash(t *testing.T) {
	assert.Equal(t, FromInt(5).Hash(), FromInt(5).Hash())
	assert.Equal(t, MustParse("5").Hash(), FromBoth(5, 5).Hash())
	assert.Equal(t, FromFloat(0).Hash(), FromFloat(math.Copysign(0, -1)).Hash())
	assert.NotEqual(t, FromInt(5).Hash(), FromInt(6).Hash())

	// Equal under a cast does not imply the same hash.
	assert.True(t, FromInt(5).EqualCast(FromFloat(5), true))
	assert.NotEqual(t, FromInt(5).Hash(), FromFloat(5).Hash())
}
