package primecache

import (
	"fmt"

	"github.com/hupe1980/primecache/internal/conv"
	"modernc.org/mathutil"
)

// LargestPrimeFactor returns the largest prime dividing v. The cache grows
// as far as the square root of the largest cofactor requires.
func (c *Cache) LargestPrimeFactor(v uint64) (uint64, error) {
	if v < 2 {
		return 0, fmt.Errorf("%w: %d has no prime factor", ErrInvalidArgument, v)
	}

	// quotient is only divided by p while p*p <= quotient, so it stays above 1
	// and the loop ends once no factor up to its square root remains.
	quotient := v
	for idx := 0; ; {
		p, err := c.PrimeAt(idx)
		if err != nil {
			return 0, err
		}

		if p > quotient/p {
			return quotient, nil
		}

		if quotient%p == 0 {
			quotient /= p
		} else {
			idx++
		}
	}
}

// SmallestMultiple returns the smallest number evenly divisible by every
// integer in 1..n, i.e. their least common multiple. ErrOverflow is returned
// if it does not fit into 64 bits.
func (c *Cache) SmallestMultiple(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: n must be positive", ErrInvalidArgument)
	}

	root := mathutil.SqrtUint64(n)
	result := uint64(1)

	for idx := 0; ; idx++ {
		p, err := c.PrimeAt(idx)
		if err != nil {
			return 0, err
		}
		if p > n {
			return result, nil
		}

		// Only primes up to sqrt(n) can appear squared in some k <= n.
		power := p
		if p <= root {
			for power <= n/p {
				power *= p
			}
		}

		var ok bool
		if result, ok = conv.MulUint64(result, power); !ok {
			return 0, fmt.Errorf("%w: smallest multiple of 1..%d", ErrOverflow, n)
		}
	}
}
