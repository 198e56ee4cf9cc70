package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// Uint64ToInt converts uint64 to int safely. It fails for counts that do
// not fit the platform int, e.g. sieve sizes past 2^31 on 32-bit targets.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// MulUint64 returns a*b and false if the product does not fit into 64 bits.
func MulUint64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// MulSaturating returns a*b, clamped to math.MaxUint64.
func MulSaturating(a, b uint64) uint64 {
	r, ok := MulUint64(a, b)
	if !ok {
		return math.MaxUint64
	}
	return r
}

// AddSaturating returns a+b, clamped to math.MaxUint64.
func AddSaturating(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}
