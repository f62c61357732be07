package searchlru

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prometheus package provides a Prometheus implementation.
//
// Methods are called after the cache lock has been released and must be safe
// for concurrent use.
type MetricsCollector interface {
	// RecordPut is called after each Put. inserted is false when an existing
	// key was overwritten; evicted is true when the put displaced the LRU key.
	RecordPut(duration time.Duration, inserted, evicted bool)

	// RecordGet is called after each Get.
	RecordGet(duration time.Duration, hit bool)

	// RecordSearch is called after each SearchByPrefix.
	// results is the number of keys returned, memoHit reports whether the
	// result came from the query memo.
	RecordSearch(duration time.Duration, results int, memoHit bool)

	// RecordDelete is called after each DeleteKey. found reports whether the
	// key was present before the call.
	RecordDelete(duration time.Duration, found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPut(time.Duration, bool, bool)   {}
func (NoopMetricsCollector) RecordGet(time.Duration, bool)         {}
func (NoopMetricsCollector) RecordSearch(time.Duration, int, bool) {}
func (NoopMetricsCollector) RecordDelete(time.Duration, bool)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PutCount         atomic.Int64
	InsertCount      atomic.Int64
	EvictionCount    atomic.Int64
	GetHits          atomic.Int64
	GetMisses        atomic.Int64
	SearchCount      atomic.Int64
	SearchMemoHits   atomic.Int64
	SearchResults    atomic.Int64
	SearchTotalNanos atomic.Int64
	DeleteCount      atomic.Int64
	DeleteMisses     atomic.Int64
}

// RecordPut implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPut(_ time.Duration, inserted, evicted bool) {
	b.PutCount.Add(1)
	if inserted {
		b.InsertCount.Add(1)
	}
	if evicted {
		b.EvictionCount.Add(1)
	}
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(_ time.Duration, hit bool) {
	if hit {
		b.GetHits.Add(1)
	} else {
		b.GetMisses.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(duration time.Duration, results int, memoHit bool) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if memoHit {
		b.SearchMemoHits.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(_ time.Duration, found bool) {
	b.DeleteCount.Add(1)
	if !found {
		b.DeleteMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PutCount:       b.PutCount.Load(),
		InsertCount:    b.InsertCount.Load(),
		EvictionCount:  b.EvictionCount.Load(),
		GetHits:        b.GetHits.Load(),
		GetMisses:      b.GetMisses.Load(),
		SearchCount:    b.SearchCount.Load(),
		SearchMemoHits: b.SearchMemoHits.Load(),
		SearchResults:  b.SearchResults.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
		DeleteCount:    b.DeleteCount.Load(),
		DeleteMisses:   b.DeleteMisses.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PutCount       int64
	InsertCount    int64
	EvictionCount  int64
	GetHits        int64
	GetMisses      int64
	SearchCount    int64
	SearchMemoHits int64
	SearchResults  int64
	SearchAvgNanos int64
	DeleteCount    int64
	DeleteMisses   int64
}

// GetHitRate returns the fraction of Get calls that found their key.
func (s BasicMetricsStats) GetHitRate() float64 {
	total := s.GetHits + s.GetMisses
	if total == 0 {
		return 0
	}
	return float64(s.GetHits) / float64(total)
}
