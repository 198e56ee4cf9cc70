package primecache

import (
	"errors"
	"fmt"

	"github.com/hupe1980/primecache/internal/resource"
)

var (
	// ErrInvalidArgument is returned when an argument is outside the accepted domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNegativeIndex is returned by PrimeAt for a negative ordinal.
	ErrNegativeIndex = fmt.Errorf("%w: negative index", ErrInvalidArgument)

	// ErrRangeNotCovered is returned when a range cannot be trial-divided with
	// the primes currently cached.
	ErrRangeNotCovered = errors.New("range not covered by cached primes")

	// ErrOverflow is returned when a result does not fit into 64 bits.
	ErrOverflow = errors.New("uint64 overflow")

	// ErrChunkFailed is matched by every *ChunkError.
	ErrChunkFailed = errors.New("chunk search failed")

	// ErrMemoryLimitExceeded is returned when a sieve buffer would exceed the
	// configured memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ChunkError reports the failure of one chunk of a parallel range search.
//
// The original underlying error can be accessed via errors.Unwrap.
type ChunkError struct {
	Index int
	Start uint64
	End   uint64
	cause error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d [%d, %d] failed: %v", e.Index, e.Start, e.End, e.cause)
}

func (e *ChunkError) Unwrap() error { return e.cause }

// Is reports ErrChunkFailed as a match.
func (e *ChunkError) Is(target error) bool { return target == ErrChunkFailed }

// InvariantError signals that a candidate was tested against a cache that
// does not hold every prime up to its square root. It is raised with panic
// and indicates a programming error, never a recoverable condition.
type InvariantError struct {
	Candidate uint64
	Largest   uint64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: candidate %d needs primes beyond %d", e.Candidate, e.Largest)
}
