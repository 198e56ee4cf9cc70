package primecache

import (
	"context"
	"fmt"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/primecache/internal/conv"
	"modernc.org/mathutil"
)

// SieveSearch ensures every prime up to n is cached, using an odd-only sieve
// of Eratosthenes instead of repeated trial division.
//
// The flag buffer holds one bit per odd value up to n and is charged against
// the memory limit configured with WithMemoryLimit. If the buffer does not fit,
// ErrMemoryLimitExceeded is returned and the cache is left unchanged. A bound
// whose flag count does not fit an int yields ErrOverflow.
func (c *Cache) SieveSearch(n uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	primes := c.snapshot()
	if n <= primes[len(primes)-1] {
		return nil
	}

	start := time.Now()
	before := len(primes)

	primes, err := c.sieve(primes, n)
	added := 0
	if err == nil {
		c.publish(primes)
		added = len(primes) - before
	}

	c.metrics.RecordSieve(added, time.Since(start), err)
	c.logger.LogSieve(context.Background(), n, added, err)

	return err
}

// sieve returns primes extended with every prime up to n.
//
// Bit k of the composite set stands for the odd value 2k+1. Once prime p has
// been applied, no composite below the square of the next prime is left
// unflagged, so the window ending at p² is harvested right away. The primes
// harvested this way drive the following iterations, which lets the sieve
// bootstrap from the seed alone.
func (c *Cache) sieve(primes []uint64, n uint64) ([]uint64, error) {
	// Number of odd values in [1, n]; (n+1)/2 would wrap at math.MaxUint64.
	size := n/2 + n&1

	flags, err := conv.Uint64ToInt(size)
	if err != nil {
		return nil, fmt.Errorf("%w: sieve up to %d needs %d flags", ErrOverflow, n, size)
	}

	bufBytes := int64((size + 7) / 8)
	if err := c.rc.AcquireMemory(bufBytes); err != nil {
		return nil, fmt.Errorf("sieve up to %d: %w", n, err)
	}
	defer c.rc.ReleaseMemory(bufBytes)

	composite := bitset.New(uint(flags))
	composite.Set(0) // 1 is not prime

	maxTest := mathutil.SqrtUint64(n)
	prevSquare := uint64(4)

	for k := 1; k < len(primes) && primes[k] <= maxTest; k++ {
		p := primes[k]
		square := p * p

		// Smaller multiples were flagged by smaller primes; even ones are not represented.
		for idx := square / 2; idx < size; idx += p {
			composite.Set(uint(idx))
		}

		primes = harvest(primes, composite, prevSquare/2, square/2)
		prevSquare = square
	}

	return harvest(primes, composite, prevSquare/2, size), nil
}

// harvest appends the unflagged values of bits [from, to) that are larger
// than the current largest prime.
func harvest(primes []uint64, composite *bitset.BitSet, from, to uint64) []uint64 {
	largest := primes[len(primes)-1]

	for idx, ok := composite.NextClear(uint(from)); ok && uint64(idx) < to; idx, ok = composite.NextClear(idx + 1) {
		if v := 2*uint64(idx) + 1; v > largest {
			primes = append(primes, v)
		}
	}

	return primes
}
