package searchlru

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with searchlru-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogEvict logs the eviction of the least recently used key.
func (l *Logger) LogEvict(ctx context.Context, key any, size int) {
	l.DebugContext(ctx, "evicted least recently used key",
		"key", key,
		"size", size,
	)
}

// LogSearch logs a prefix search.
func (l *Logger) LogSearch(ctx context.Context, prefix string, results int, memoHit bool) {
	l.DebugContext(ctx, "prefix search completed",
		"prefix", prefix,
		"results", results,
		"memo_hit", memoHit,
	)
}

// LogPurge logs a purge of all entries.
func (l *Logger) LogPurge(ctx context.Context, removed int) {
	l.InfoContext(ctx, "cache purged",
		"removed", removed,
	)
}
