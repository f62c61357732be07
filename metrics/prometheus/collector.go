// Package prometheus exports searchlru cache metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, _ := searchlruprom.New(reg, "myapp")
//	c, _ := searchlru.New[string, []byte](4096, searchlru.WithMetricsCollector[string, []byte](mc))
package prometheus

import (
	"time"

	"github.com/hupe1980/searchlru"
	prom "github.com/prometheus/client_golang/prometheus"
)

var _ searchlru.MetricsCollector = (*Collector)(nil)

// Collector implements searchlru.MetricsCollector on Prometheus metrics.
type Collector struct {
	opLatency     *prom.HistogramVec
	operations    *prom.CounterVec
	evictions     prom.Counter
	searchResults prom.Histogram
}

// New creates a Collector and registers its metrics with reg. namespace
// prefixes every metric name and may be empty.
func New(reg prom.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		opLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "searchlru_operation_latency_seconds",
			Help:      "Latency of cache operations",
			Buckets:   prom.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"op"}),
		operations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "searchlru_operations_total",
			Help:      "Cache operations by outcome",
		}, []string{"op", "result"}),
		evictions: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "searchlru_evictions_total",
			Help:      "Entries evicted to make room for new keys",
		}),
		searchResults: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "searchlru_search_results",
			Help:      "Number of keys returned by prefix searches",
			Buckets:   prom.ExponentialBuckets(1, 4, 8),
		}),
	}

	for _, col := range []prom.Collector{c.opLatency, c.operations, c.evictions, c.searchResults} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordPut implements searchlru.MetricsCollector.
func (c *Collector) RecordPut(d time.Duration, inserted, evicted bool) {
	result := "update"
	if inserted {
		result = "insert"
	}
	c.opLatency.WithLabelValues("put").Observe(d.Seconds())
	c.operations.WithLabelValues("put", result).Inc()
	if evicted {
		c.evictions.Inc()
	}
}

// RecordGet implements searchlru.MetricsCollector.
func (c *Collector) RecordGet(d time.Duration, hit bool) {
	c.opLatency.WithLabelValues("get").Observe(d.Seconds())
	c.operations.WithLabelValues("get", hitMiss(hit)).Inc()
}

// RecordSearch implements searchlru.MetricsCollector.
func (c *Collector) RecordSearch(d time.Duration, results int, memoHit bool) {
	c.opLatency.WithLabelValues("search").Observe(d.Seconds())
	c.operations.WithLabelValues("search", "memo_"+hitMiss(memoHit)).Inc()
	c.searchResults.Observe(float64(results))
}

// RecordDelete implements searchlru.MetricsCollector.
func (c *Collector) RecordDelete(d time.Duration, found bool) {
	c.opLatency.WithLabelValues("delete").Observe(d.Seconds())
	c.operations.WithLabelValues("delete", hitMiss(found)).Inc()
}

func hitMiss(ok bool) string {
	if ok {
		return "hit"
	}
	return "miss"
}
