package numeric

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

func hashNumber(n Number) uint64 {
	var buf [17]byte
	buf[0] = byte(n.kind)

	switch n.kind {
	case Integer:
		binary.LittleEndian.PutUint64(buf[1:9], uint64(n.i))
		return xxhash.Sum64(buf[:9])
	case Float:
		binary.LittleEndian.PutUint64(buf[1:9], floatBits(n.f))
		return xxhash.Sum64(buf[:9])
	}
	binary.LittleEndian.PutUint64(buf[1:9], uint64(n.i))
	binary.LittleEndian.PutUint64(buf[9:17], floatBits(n.f))
	return xxhash.Sum64(buf[:])
}

// floatBits folds -0 onto +0 and every NaN onto one payload so that values
// Equal treats alike hash alike.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(f)
}
