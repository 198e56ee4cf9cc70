// Package primecache provides a self-extending cache of prime numbers.
//
// A Cache holds the primes from 2 up to the largest one discovered so far,
// in order and without gaps. It grows on demand and every operation is built
// on top of it.
//
// # Quick Start
//
//	c := primecache.New()
//	p, _ := c.PrimeAt(100)                   // 547, grown by trial division
//	_ = c.SieveSearch(1_000_000)             // bulk growth with an odd-only sieve
//	_ = c.ComputeParallel(ctx, 1<<20, 1<<14) // concurrent chunked search
//	primes, _ := c.CheckRange(20, 40)        // [23 29 31 37], no growth
//
// # Growth
//
// Three operations extend the sequence:
//
//   - PrimeAt: sequential trial division up to the requested ordinal
//   - SieveSearch: every prime up to a bound, via a sieve of Eratosthenes
//   - ComputeParallel: a bounded window past the frontier, split into chunks
//     that are searched concurrently and merged in order
//
// Growth is serialized; reads such as Count, Largest and CheckRange never
// block and may run concurrently with it.
//
// # Number Theory
//
//	f, _ := c.LargestPrimeFactor(360)  // 5
//	m, _ := c.SmallestMultiple(10)     // 2520
//
// Values are native uint64. There is no big-integer arithmetic and no
// probabilistic primality testing; results that do not fit into 64 bits are
// reported with ErrOverflow.
package primecache
