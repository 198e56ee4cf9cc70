package primecache

import (
	"context"
	"fmt"
	"slices"

	"modernc.org/mathutil"
)

// ctxCheckInterval is the number of candidates scanned between context checks.
const ctxCheckInterval = 1 << 10

// searchRange is an inclusive range of candidates.
type searchRange struct {
	start uint64
	end   uint64
}

// isOddPrime reports whether the odd value v >= 3 is prime. primes must hold
// every prime up to floor(sqrt(v)); otherwise it panics with *InvariantError.
func isOddPrime(primes []uint64, v uint64) bool {
	maxTest := mathutil.SqrtUint64(v)

	// Index 0 holds 2, which never divides an odd candidate.
	k := 1
	for ; k < len(primes) && primes[k] <= maxTest; k++ {
		if v%primes[k] == 0 {
			return false
		}
	}

	if k == len(primes) && primes[k-1] < maxTest {
		panic(&InvariantError{Candidate: v, Largest: primes[k-1]})
	}

	return true
}

// scanRange returns the primes in r in ascending order.
func scanRange(ctx context.Context, primes []uint64, r searchRange) ([]uint64, error) {
	var found []uint64
	if r.start <= 2 && r.end >= 2 {
		found = append(found, 2)
	}

	n := 0
	for candidate := max(r.start, 3) | 1; candidate <= r.end; candidate += 2 {
		if n&(ctxCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		n++

		if isOddPrime(primes, candidate) {
			found = append(found, candidate)
		}
		if r.end-candidate < 2 {
			break
		}
	}

	return found, nil
}

// CheckRange returns the primes in [start, end] in ascending order without
// growing the cache. The range must be testable with the primes already
// cached, i.e. floor(sqrt(end)) must not exceed Largest(); otherwise
// ErrRangeNotCovered is returned.
func (c *Cache) CheckRange(start, end uint64) ([]uint64, error) {
	if start > end {
		return nil, nil
	}

	primes := c.snapshot()
	largest := primes[len(primes)-1]
	if root := mathutil.SqrtUint64(end); root > largest {
		return nil, fmt.Errorf("%w: [%d, %d] needs primes up to %d, largest is %d", ErrRangeNotCovered, start, end, root, largest)
	}

	return scanRange(context.Background(), primes, searchRange{start: start, end: end})
}

// IsPrime reports whether v is prime. The cache is grown until it holds
// every prime up to floor(sqrt(v)).
func (c *Cache) IsPrime(v uint64) bool {
	switch {
	case v < 2:
		return false
	case v == 2:
		return true
	case v%2 == 0:
		return false
	}

	maxTest := mathutil.SqrtUint64(v)
	primes := c.grow(func(primes []uint64) bool {
		return primes[len(primes)-1] >= maxTest
	})

	if v <= primes[len(primes)-1] {
		_, found := slices.BinarySearch(primes, v)
		return found
	}

	return isOddPrime(primes, v)
}
