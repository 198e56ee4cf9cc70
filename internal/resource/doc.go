// Package resource implements the memory budget that bounds sieve flag buffers.
//
// A weighted semaphore enforces the hard limit and an atomic counter reports
// what is currently reserved. AcquireMemory never blocks: a sieve that does
// not fit fails right away with an error wrapping ErrMemoryLimitExceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(size); err != nil {
//	    return err // wraps ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(size)
//
// All Controller methods are safe for concurrent use and handle a nil
// Controller gracefully.
package resource
