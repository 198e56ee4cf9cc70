package testutil

import (
	"math"
	"math/rand"
	"sync"

	"modernc.org/mathutil"
)

// RNG is a seeded random source for reproducible test inputs.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64Range returns a pseudo-random number in [lo, hi].
func (r *RNG) Uint64Range(lo, hi uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hi <= lo {
		return lo
	}
	if hi-lo == math.MaxUint64 {
		return r.rand.Uint64()
	}
	return lo + r.rand.Uint64()%(hi-lo+1)
}

// IsPrime reports whether v is prime by checking every divisor d with
// 1 < d*d <= v. It is slow and independent of any cache.
func IsPrime(v uint64) bool {
	if v < 2 {
		return false
	}
	for d := uint64(2); d <= v/d; d++ {
		if v%d == 0 {
			return false
		}
	}
	return true
}

// IsPrimeFast reports whether v is prime using a deterministic
// Miller-Rabin test. Use it where the naive oracle would be too slow.
func IsPrimeFast(v uint64) bool {
	return mathutil.IsPrimeUint64(v)
}

// PrimesUpTo returns all primes <= n in ascending order.
func PrimesUpTo(n uint64) []uint64 {
	var primes []uint64
	for v := uint64(2); v <= n; v++ {
		if IsPrime(v) {
			primes = append(primes, v)
		}
	}
	return primes
}

// PrimesBetween returns all primes in [lo, hi] in ascending order.
func PrimesBetween(lo, hi uint64) []uint64 {
	var primes []uint64
	for v := lo; v <= hi; v++ {
		if IsPrimeFast(v) {
			primes = append(primes, v)
		}
		if v == hi {
			break
		}
	}
	return primes
}
