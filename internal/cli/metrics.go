package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/nodecanvas/pkg/observability"
)

// =============================================================================
// Prometheus Editor Hooks
// =============================================================================

// metricsHooks exports editor frame and connection counters to prometheus.
// It implements observability.EditorHooks.
type metricsHooks struct {
	frames      *prometheus.CounterVec
	nodes       *prometheus.GaugeVec
	connections *prometheus.GaugeVec
	reclaimed   *prometheus.CounterVec
	made        *prometheus.CounterVec
	broken      *prometheus.CounterVec
	rejected    *prometheus.CounterVec
}

// newMetricsHooks registers the editor metrics with reg and returns the hooks.
func newMetricsHooks(reg *prometheus.Registry) *metricsHooks {
	factory := promauto.With(reg)
	return &metricsHooks{
		frames: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nodecanvas_frames_total",
			Help: "Editor frames submitted per graph.",
		}, []string{"graph"}),
		nodes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "nodecanvas_nodes",
			Help: "Nodes submitted in the most recent frame.",
		}, []string{"graph"}),
		connections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "nodecanvas_connections",
			Help: "Live connections after the most recent frame.",
		}, []string{"graph"}),
		reclaimed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nodecanvas_nodes_reclaimed_total",
			Help: "Node identities reclaimed after the grace frame.",
		}, []string{"graph"}),
		made: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nodecanvas_connections_made_total",
			Help: "Connections accepted into the registry.",
		}, []string{"graph"}),
		broken: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nodecanvas_connections_broken_total",
			Help: "Connections removed from the registry.",
		}, []string{"graph"}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nodecanvas_connections_rejected_total",
			Help: "Connection attempts refused by the validation predicate.",
		}, []string{"graph"}),
	}
}

func (m *metricsHooks) OnFrame(graph string, nodes, connections int) {
	m.frames.WithLabelValues(graph).Inc()
	m.nodes.WithLabelValues(graph).Set(float64(nodes))
	m.connections.WithLabelValues(graph).Set(float64(connections))
}

func (m *metricsHooks) OnNodesReclaimed(graph string, count int) {
	m.reclaimed.WithLabelValues(graph).Add(float64(count))
}

func (m *metricsHooks) OnConnectionMade(graph string)     { m.made.WithLabelValues(graph).Inc() }
func (m *metricsHooks) OnConnectionBroken(graph string)   { m.broken.WithLabelValues(graph).Inc() }
func (m *metricsHooks) OnConnectionRejected(graph string) { m.rejected.WithLabelValues(graph).Inc() }

// =============================================================================
// Metrics Server
// =============================================================================

// startMetricsServer installs prometheus editor hooks and serves /metrics and
// /healthz on addr until ctx is cancelled. It returns a stop function that
// blocks until the server has shut down.
func startMetricsServer(ctx context.Context, logger *log.Logger, addr string) func() {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	observability.SetEditorHooks(newMetricsHooks(reg))

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("Metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		<-done
		observability.Reset()
	}
}
