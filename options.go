package primecache

import (
	"log/slog"
	"runtime"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	maxWorkers       int
	memoryLimit      int64
}

// Option configures a Cache.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring growth.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &primecache.BasicMetricsCollector{}
//	c := primecache.New(primecache.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Sieve calls: %d, primes found: %d\n", stats.SieveCount, stats.SievePrimes)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := primecache.NewJSONLogger(slog.LevelInfo)
//	c := primecache.New(primecache.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxWorkers bounds the number of chunks ComputeParallel searches at once.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithMemoryLimit caps the bytes a single sieve search may allocate for its
// flag buffer. 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.maxWorkers <= 0 {
		o.maxWorkers = runtime.GOMAXPROCS(0)
	}
	return o
}
