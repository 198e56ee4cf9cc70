package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	for _, v := range []uint64{2, 3, 5, 7, 97, 7919} {
		assert.True(t, IsPrime(v), "%d", v)
	}
	for _, v := range []uint64{0, 1, 4, 9, 91, 7917} {
		assert.False(t, IsPrime(v), "%d", v)
	}
}

func TestOraclesAgree(t *testing.T) {
	for v := uint64(0); v < 5000; v++ {
		assert.Equal(t, IsPrime(v), IsPrimeFast(v), "%d", v)
	}
}

func TestPrimesUpTo(t *testing.T) {
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, PrimesUpTo(30))
	assert.Empty(t, PrimesUpTo(1))
}

func TestPrimesBetween(t *testing.T) {
	assert.Equal(t, []uint64{23, 29, 31, 37}, PrimesBetween(20, 40))
	assert.Empty(t, PrimesBetween(24, 28))
}

func TestRNG(t *testing.T) {
	rng := NewRNG(4711)

	first := rng.Uint64Range(10, 20)
	assert.GreaterOrEqual(t, first, uint64(10))
	assert.LessOrEqual(t, first, uint64(20))

	// Same seed, same sequence.
	assert.Equal(t, first, NewRNG(4711).Uint64Range(10, 20))
	assert.Equal(t, uint64(5), rng.Uint64Range(5, 5))
}
