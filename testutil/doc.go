// Package testutil provides testing utilities for primecache.
//
// This package is intended for use in tests and benchmarks only. It provides
// reference primality oracles that do not depend on a Cache, and a seeded
// random source for picking test windows.
//
//	testutil.IsPrime(97)          // naive divisor scan
//	testutil.IsPrimeFast(1<<61-1) // deterministic Miller-Rabin
//	testutil.PrimesUpTo(30)       // [2 3 5 7 11 13 17 19 23 29]
//
//	rng := testutil.NewRNG(4711)
//	lo := rng.Uint64Range(100, 10_000)
package testutil
