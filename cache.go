package primecache

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/primecache/internal/resource"
)

// seed bootstraps trial division for every candidate below 17*17.
var seed = [...]uint64{2, 3, 5, 7, 11, 13}

// Cache is an append-only, gap-free sequence of primes starting at 2.
//
// Reads never block: the current sequence is published through an atomic
// pointer and a published prefix is never rewritten. Growth operations are
// serialized by mu, so a Cache is safe for concurrent use.
type Cache struct {
	primes atomic.Pointer[[]uint64]
	mu     sync.Mutex // Protects growth

	maxWorkers int
	logger     *Logger
	metrics    MetricsCollector
	rc         *resource.Controller

	// scan searches one range; replaced in tests to inject chunk failures.
	scan func(ctx context.Context, primes []uint64, r searchRange) ([]uint64, error)
}

// Stats is a point-in-time view of a Cache.
type Stats struct {
	Count       int
	Largest     uint64
	MemoryUsage int64
	MemoryLimit int64
}

// New creates a Cache holding the seed primes 2 through 13.
func New(optFns ...Option) *Cache {
	o := applyOptions(optFns)

	c := &Cache{
		maxWorkers: o.maxWorkers,
		logger:     o.logger,
		metrics:    o.metricsCollector,
		rc:         resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit}),
		scan:       scanRange,
	}

	primes := make([]uint64, len(seed), 1024)
	copy(primes, seed[:])
	c.publish(primes)

	return c
}

func (c *Cache) snapshot() []uint64 {
	return *c.primes.Load()
}

func (c *Cache) publish(primes []uint64) {
	c.primes.Store(&primes)
}

// Count returns the number of primes discovered so far.
func (c *Cache) Count() int {
	return len(c.snapshot())
}

// Largest returns the largest prime discovered so far.
func (c *Cache) Largest() uint64 {
	primes := c.snapshot()
	return primes[len(primes)-1]
}

// Primes returns a copy of the discovered sequence.
func (c *Cache) Primes() []uint64 {
	return slices.Clone(c.snapshot())
}

// Bitmap returns the discovered primes as a compressed set.
func (c *Cache) Bitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	bm.AddMany(c.snapshot())
	return bm
}

// Stats returns the current size of the cache and its sieve memory budget.
func (c *Cache) Stats() Stats {
	primes := c.snapshot()
	return Stats{
		Count:       len(primes),
		Largest:     primes[len(primes)-1],
		MemoryUsage: c.rc.MemoryUsage(),
		MemoryLimit: c.rc.MemoryLimit(),
	}
}

// PrimeAt returns the prime at ordinal index i (0 yields 2), discovering
// primes by trial division until the sequence is long enough.
func (c *Cache) PrimeAt(i int) (uint64, error) {
	if i < 0 {
		return 0, ErrNegativeIndex
	}

	// Fast path
	if primes := c.snapshot(); i < len(primes) {
		return primes[i], nil
	}

	primes := c.grow(func(primes []uint64) bool {
		return len(primes) > i
	})
	return primes[i], nil
}

// grow extends the sequence one prime at a time until done reports true.
// Extension is strictly sequential: every candidate needs all primes up to
// its square root, which are exactly the primes found before it.
func (c *Cache) grow(done func([]uint64) bool) []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Reload under lock
	primes := c.snapshot()
	if done(primes) {
		return primes
	}

	start := time.Now()
	before := len(primes)

	for candidate := primes[len(primes)-1] + 2; !done(primes); candidate += 2 {
		if isOddPrime(primes, candidate) {
			primes = append(primes, candidate)
		}
	}
	c.publish(primes)

	added := len(primes) - before
	c.metrics.RecordGrowth(added, time.Since(start))
	c.logger.WithLargest(primes[len(primes)-1]).LogGrowth(context.Background(), len(primes)-1, added)

	return primes
}
