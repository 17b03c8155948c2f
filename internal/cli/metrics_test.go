package cli

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsHooksCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := newMetricsHooks(reg)

	h.OnFrame("demo", 4, 3)
	h.OnFrame("demo", 4, 2)
	h.OnNodesReclaimed("demo", 2)
	h.OnConnectionMade("demo")
	h.OnConnectionBroken("demo")
	h.OnConnectionRejected("demo")

	assert.Equal(t, float64(2), testutil.ToFloat64(h.frames.WithLabelValues("demo")))
	assert.Equal(t, float64(4), testutil.ToFloat64(h.nodes.WithLabelValues("demo")))
	assert.Equal(t, float64(2), testutil.ToFloat64(h.connections.WithLabelValues("demo")))
	assert.Equal(t, float64(2), testutil.ToFloat64(h.reclaimed.WithLabelValues("demo")))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.made.WithLabelValues("demo")))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.broken.WithLabelValues("demo")))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.rejected.WithLabelValues("demo")))
}

func TestMetricsHooksPerGraphLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := newMetricsHooks(reg)

	h.OnConnectionMade("a")
	h.OnConnectionMade("a")
	h.OnConnectionMade("b")

	assert.Equal(t, float64(2), testutil.ToFloat64(h.made.WithLabelValues("a")))
	assert.Equal(t, float64(1), testutil.ToFloat64(h.made.WithLabelValues("b")))
}
