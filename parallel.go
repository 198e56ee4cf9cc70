package primecache

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/primecache/internal/conv"
	"golang.org/x/sync/errgroup"
)

// ComputeParallel extends the cache by searching the window beyond the largest
// prime concurrently, in chunks of at most chunkSizeLimit candidates.
//
// The window is [largest+2, min(largest+searchSizeLimit, largest²)]: no
// candidate in it needs a divisor that is not cached yet. Workers share an
// immutable snapshot of the sequence and only fill their own result slot; the
// results are merged on the calling goroutine in chunk order.
//
// If any chunk fails, including by cancellation of ctx, a *ChunkError is
// returned once all dispatched chunks have settled and nothing is merged.
func (c *Cache) ComputeParallel(ctx context.Context, searchSizeLimit, chunkSizeLimit uint64) error {
	if searchSizeLimit == 0 || chunkSizeLimit == 0 {
		return fmt.Errorf("%w: search size %d and chunk size %d must be positive", ErrInvalidArgument, searchSizeLimit, chunkSizeLimit)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()

	primes := c.snapshot()
	largest := primes[len(primes)-1]
	lower := largest + 2
	upper := min(conv.AddSaturating(largest, searchSizeLimit), conv.MulSaturating(largest, largest))

	ranges := partition(lower, upper, chunkSizeLimit)

	found, err := c.searchChunks(ctx, primes[:len(primes):len(primes)], ranges)
	added := 0
	if err == nil {
		for _, chunk := range found {
			primes = append(primes, chunk...)
			added += len(chunk)
		}
		c.publish(primes)
	}

	c.metrics.RecordParallelSearch(len(ranges), added, time.Since(start), err)
	c.logger.LogParallelSearch(ctx, lower, upper, len(ranges), added, err)

	return err
}

// partition splits [lower, upper] into consecutive, non-overlapping ranges of
// at most width candidates. The last range may be narrower.
func partition(lower, upper, width uint64) []searchRange {
	if upper < lower || width == 0 {
		return nil
	}

	ranges := make([]searchRange, 0, (upper-lower)/width+1)
	for start := lower; ; {
		end := upper
		if upper-start >= width {
			end = start + width - 1
		}
		ranges = append(ranges, searchRange{start: start, end: end})
		if end == upper {
			return ranges
		}
		start = end + 1
	}
}

// searchChunks scans every range concurrently and returns the results in
// range order.
func (c *Cache) searchChunks(ctx context.Context, primes []uint64, ranges []searchRange) ([][]uint64, error) {
	results := make([][]uint64, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxWorkers)

	for i, r := range ranges {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					if e, ok := rec.(error); ok {
						err = fmt.Errorf("recovered panic: %w", e)
					} else {
						err = fmt.Errorf("recovered panic: %v", rec)
					}
				}
				if err != nil {
					err = &ChunkError{Index: i, Start: r.start, End: r.end, cause: err}
				}
			}()

			found, err := c.scan(gctx, primes, r)
			if err != nil {
				return err
			}
			results[i] = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
