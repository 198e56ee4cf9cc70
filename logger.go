package primecache

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with primecache-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithLargest adds the current frontier to the logger.
func (l *Logger) WithLargest(largest uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("largest", largest),
	}
}

// LogGrowth logs an indexed lazy growth step. Use WithLargest to attach the
// new frontier.
func (l *Logger) LogGrowth(ctx context.Context, index, added int) {
	l.DebugContext(ctx, "cache grown",
		"index", index,
		"added", added,
	)
}

// LogSieve logs a sieve extension.
func (l *Logger) LogSieve(ctx context.Context, bound uint64, added int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sieve search failed",
			"bound", bound,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sieve search completed",
			"bound", bound,
			"added", added,
		)
	}
}

// LogParallelSearch logs a parallel range search.
func (l *Logger) LogParallelSearch(ctx context.Context, lower, upper uint64, chunks, added int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parallel search failed",
			"lower", lower,
			"upper", upper,
			"chunks", chunks,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "parallel search completed",
			"lower", lower,
			"upper", upper,
			"chunks", chunks,
			"added", added,
		)
	}
}
