package prometheus

import (
	"testing"

	"github.com/hupe1980/searchlru"
	prom "github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsCacheOperations(t *testing.T) {
	reg := prom.NewRegistry()
	mc, err := New(reg, "test")
	require.NoError(t, err)

	c, err := searchlru.New[string, int](2, searchlru.WithMetricsCollector[string, int](mc))
	require.NoError(t, err)

	c.Put("cat", 1)
	c.Put("car", 2)
	c.Put("cat", 3) // update
	c.Put("dog", 4) // evicts car

	_, _ = c.Get("cat")
	_, _ = c.Get("car")

	_ = c.SearchByPrefix("ca")
	_ = c.SearchByPrefix("ca")

	assert.True(t, c.DeleteKey("dog"))
	assert.False(t, c.DeleteKey("dog"))

	assert.Equal(t, 3.0, promtestutil.ToFloat64(mc.operations.WithLabelValues("put", "insert")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(mc.operations.WithLabelValues("put", "update")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(mc.evictions))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(mc.operations.WithLabelValues("get", "hit")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(mc.operations.WithLabelValues("get", "miss")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(mc.operations.WithLabelValues("search", "memo_miss")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(mc.operations.WithLabelValues("search", "memo_hit")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(mc.operations.WithLabelValues("delete", "hit")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(mc.operations.WithLabelValues("delete", "miss")))

	// Four label sets were observed in the latency histogram.
	assert.Equal(t, 4, promtestutil.CollectAndCount(mc.opLatency))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prom.NewRegistry()
	_, err := New(reg, "dup")
	require.NoError(t, err)

	_, err = New(reg, "dup")
	assert.Error(t, err)

	_, err = New(reg, "other")
	assert.NoError(t, err)
}
