package primecache_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/primecache"
)

// Example_primeAt demonstrates indexed lazy growth.
func Example_primeAt() {
	c := primecache.New()

	for i := 5; i <= 7; i++ {
		p, err := c.PrimeAt(i)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(i, p)
	}
	fmt.Println("count:", c.Count())
	// Output:
	// 5 13
	// 6 17
	// 7 19
	// count: 8
}

// Example_checkRange demonstrates a range search over the cached primes.
func Example_checkRange() {
	c := primecache.New()

	primes, err := c.CheckRange(20, 40)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(primes)

	if _, err := c.CheckRange(1000, 2000); errors.Is(err, primecache.ErrRangeNotCovered) {
		fmt.Println("grow the cache first")
	}
	// Output:
	// [23 29 31 37]
	// grow the cache first
}

// Example_sieveSearch demonstrates bulk growth with the sieve.
func Example_sieveSearch() {
	c := primecache.New()

	if err := c.SieveSearch(30); err != nil {
		log.Fatal(err)
	}
	fmt.Println(c.Primes())
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

// Example_computeParallel demonstrates a concurrent chunked search.
func Example_computeParallel() {
	metrics := &primecache.BasicMetricsCollector{}
	c := primecache.New(
		primecache.WithMaxWorkers(4),
		primecache.WithMetricsCollector(metrics),
	)

	if err := c.ComputeParallel(context.Background(), 100, 25); err != nil {
		log.Fatal(err)
	}

	stats := metrics.GetStats()
	fmt.Println("largest:", c.Largest())
	fmt.Println("chunks:", stats.ParallelChunks, "primes:", stats.ParallelPrimes)
	// Output:
	// largest: 113
	// chunks: 4 primes: 24
}

// Example_numberTheory demonstrates the number-theoretic utilities.
func Example_numberTheory() {
	c := primecache.New()

	f, err := c.LargestPrimeFactor(360)
	if err != nil {
		log.Fatal(err)
	}
	m, err := c.SmallestMultiple(10)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(f, m)
	// Output: 5 2520
}
