package searchlru

import (
	"fmt"
	"log/slog"
)

type options[K comparable, V any] struct {
	logger           *Logger
	metricsCollector MetricsCollector
	keyString        func(K) string
	onEvict          func(K, V)
	memo             bool
}

// Option configures a Cache.
type Option[K comparable, V any] func(*options[K, V])

// WithLogger configures structured logging for cache operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := searchlru.NewJSONLogger(slog.LevelDebug)
//	c, _ := searchlru.New[string, int](128, searchlru.WithLogger[string, int](logger))
func WithLogger[K comparable, V any](logger *Logger) Option[K, V] {
	return func(o *options[K, V]) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[K comparable, V any](level slog.Level) Option[K, V] {
	return func(o *options[K, V]) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &searchlru.BasicMetricsCollector{}
//	c, _ := searchlru.New[string, int](128, searchlru.WithMetricsCollector[string, int](metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Get hit rate: %.2f\n", stats.GetHitRate())
func WithMetricsCollector[K comparable, V any](mc MetricsCollector) Option[K, V] {
	return func(o *options[K, V]) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithKeyString sets the function producing a key's canonical string form, which
// prefix search matches against. It also stringifies the prefix argument.
//
// The default is fmt.Sprint. Prefix search is only exhaustive when the key order
// agrees with the ordinal order of these strings.
func WithKeyString[K comparable, V any](fn func(K) string) Option[K, V] {
	return func(o *options[K, V]) {
		if fn != nil {
			o.keyString = fn
		}
	}
}

// WithOnEvict sets a callback invoked for every entry displaced by a Put at
// capacity. It runs after the cache lock is released, so it may call back into
// the cache.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvict = fn
	}
}

// WithoutMemo disables the prefix-search result memo. Every search then walks
// the index.
func WithoutMemo[K comparable, V any]() Option[K, V] {
	return func(o *options[K, V]) {
		o.memo = false
	}
}

func defaultKeyString[K comparable](k K) string {
	// Skip fmt for the common string key.
	if s, ok := any(k).(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func applyOptions[K comparable, V any](optFns []Option[K, V]) options[K, V] {
	o := options[K, V]{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		keyString:        defaultKeyString[K],
		memo:             true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
