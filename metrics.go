package primecache

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrowth is called after indexed lazy growth appended primes.
	// added is the number of primes appended.
	RecordGrowth(added int, duration time.Duration)

	// RecordSieve is called after each sieve search.
	// err is nil if successful.
	RecordSieve(added int, duration time.Duration, err error)

	// RecordParallelSearch is called after each parallel range search.
	// chunks is the number of chunks dispatched, added the number of primes merged.
	RecordParallelSearch(chunks, added int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrowth(int, time.Duration)                     {}
func (NoopMetricsCollector) RecordSieve(int, time.Duration, error)               {}
func (NoopMetricsCollector) RecordParallelSearch(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	GrowthCount      atomic.Int64
	GrowthPrimes     atomic.Int64
	GrowthTotalNanos atomic.Int64
	SieveCount       atomic.Int64
	SievePrimes      atomic.Int64
	SieveErrors      atomic.Int64
	SieveTotalNanos  atomic.Int64
	ParallelCount    atomic.Int64
	ParallelChunks   atomic.Int64
	ParallelPrimes   atomic.Int64
	ParallelErrors   atomic.Int64
}

// RecordGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrowth(added int, duration time.Duration) {
	b.GrowthCount.Add(1)
	b.GrowthPrimes.Add(int64(added))
	b.GrowthTotalNanos.Add(duration.Nanoseconds())
}

// RecordSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSieve(added int, duration time.Duration, err error) {
	b.SieveCount.Add(1)
	b.SieveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SieveErrors.Add(1)
		return
	}
	b.SievePrimes.Add(int64(added))
}

// RecordParallelSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParallelSearch(chunks, added int, duration time.Duration, err error) {
	b.ParallelCount.Add(1)
	b.ParallelChunks.Add(int64(chunks))
	if err != nil {
		b.ParallelErrors.Add(1)
		return
	}
	b.ParallelPrimes.Add(int64(added))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowthCount:    b.GrowthCount.Load(),
		GrowthPrimes:   b.GrowthPrimes.Load(),
		GrowthAvgNanos: avg(b.GrowthTotalNanos.Load(), b.GrowthCount.Load()),
		SieveCount:     b.SieveCount.Load(),
		SievePrimes:    b.SievePrimes.Load(),
		SieveErrors:    b.SieveErrors.Load(),
		SieveAvgNanos:  avg(b.SieveTotalNanos.Load(), b.SieveCount.Load()),
		ParallelCount:  b.ParallelCount.Load(),
		ParallelChunks: b.ParallelChunks.Load(),
		ParallelPrimes: b.ParallelPrimes.Load(),
		ParallelErrors: b.ParallelErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowthCount    int64
	GrowthPrimes   int64
	GrowthAvgNanos int64
	SieveCount     int64
	SievePrimes    int64
	SieveErrors    int64
	SieveAvgNanos  int64
	ParallelCount  int64
	ParallelChunks int64
	ParallelPrimes int64
	ParallelErrors int64
}
