package primecache

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hupe1980/primecache/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOddPrime(t *testing.T) {
	primes := seed[:]

	for v := uint64(3); v <= 169; v += 2 {
		assert.Equal(t, testutil.IsPrime(v), isOddPrime(primes, v), "%d", v)
	}
}

func TestIsOddPrimeUncovered(t *testing.T) {
	primes := seed[:]

	// 361 = 19*19 needs 17 and 19, neither is cached.
	assert.PanicsWithError(t, (&InvariantError{Candidate: 361, Largest: 13}).Error(), func() {
		isOddPrime(primes, 361)
	})
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name  string
		start uint64
		end   uint64
		want  []uint64
	}{
		{"Window", 20, 40, []uint64{23, 29, 31, 37}},
		{"IncludesTwo", 0, 10, []uint64{2, 3, 5, 7}},
		{"OnlyTwo", 2, 2, []uint64{2}},
		{"OddBounds", 17, 19, []uint64{17, 19}},
		{"NoPrimes", 24, 28, nil},
		{"EvenSingleton", 14, 14, nil},
		{"Reversed", 40, 20, nil},
		{"SquaredSeed", 0, 169, testutil.PrimesUpTo(169)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()

			got, err := c.CheckRange(tt.start, tt.end)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CheckRange(%d, %d) mismatch (-want +got):\n%s", tt.start, tt.end, diff)
			}
			assert.Equal(t, 6, c.Count(), "CheckRange must not grow the cache")
		})
	}
}

func TestCheckRangeNotCovered(t *testing.T) {
	c := New()

	_, err := c.CheckRange(100, 1000)
	assert.ErrorIs(t, err, ErrRangeNotCovered)

	require.NoError(t, c.SieveSearch(100))

	got, err := c.CheckRange(100, 1000)
	require.NoError(t, err)
	assert.Equal(t, testutil.PrimesBetween(100, 1000), got)
}

func TestScanRangeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanRange(ctx, seed[:], searchRange{start: 15, end: 169})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsPrime(t *testing.T) {
	c := New()

	for v := uint64(0); v <= 2000; v++ {
		assert.Equal(t, testutil.IsPrime(v), c.IsPrime(v), "%d", v)
	}

	t.Run("Large", func(t *testing.T) {
		assert.True(t, c.IsPrime(1_000_000_007))
		assert.True(t, c.IsPrime(104_729))
		assert.False(t, c.IsPrime(1_000_003*1_000_033))
		assert.False(t, c.IsPrime(1<<62))
	})

	t.Run("KnownPrime", func(t *testing.T) {
		// Answered from the cached sequence.
		largest := c.Largest()
		for v := largest - 100; v <= largest; v++ {
			assert.Equal(t, testutil.IsPrime(v), c.IsPrime(v), "%d", v)
		}
	})
}
