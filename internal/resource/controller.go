package resource

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrMemoryLimitExceeded is returned when a reservation does not fit the budget.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes caps the bytes reserved at once, e.g. by concurrent
	// sieve flag buffers. If 0, reservations are only tracked.
	MemoryLimitBytes int64
}

// Controller is a budget for short-lived buffers such as sieve flag sets.
// A buffer is reserved before it is allocated and released once it is
// dropped, so usage reflects buffers that are currently alive.
type Controller struct {
	cfg Config

	budget   *semaphore.Weighted // nil if unlimited
	reserved atomic.Int64
}

// NewController creates a controller for the given limits.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	if cfg.MemoryLimitBytes > 0 {
		c.budget = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	return c
}

// AcquireMemory reserves bytes without blocking. If the reservation does not
// fit, the returned error wraps ErrMemoryLimitExceeded and names the request
// and the current usage; nothing is reserved in that case.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.budget != nil && !c.budget.TryAcquire(bytes) {
		return fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrMemoryLimitExceeded, bytes, c.reserved.Load(), c.cfg.MemoryLimitBytes)
	}

	c.reserved.Add(bytes)
	return nil
}

// ReleaseMemory returns a reservation made by AcquireMemory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.budget != nil {
		c.budget.Release(bytes)
	}
	c.reserved.Add(-bytes)
}

// MemoryUsage returns the bytes currently reserved.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.reserved.Load()
}

// MemoryLimit returns the configured limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}
