// Package metric provides Prometheus metrics for chatmesh.
//
// All metrics live in one Registry handed to the components that record
// them, and are exposed at /metrics on the cluster listener.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	// SessionsActive is the number of logged-in users on this node.
	SessionsActive prometheus.Gauge

	// MessagesTotal counts dispatched messages by kind and result code.
	MessagesTotal *prometheus.CounterVec

	// MessageDuration is handler latency by message kind.
	MessageDuration *prometheus.HistogramVec

	// DispatchRejected counts messages refused because the dispatcher
	// was stopping or the registry had no handler for the kind.
	DispatchRejected *prometheus.CounterVec

	// DispatchQueueDepth is the current depth per worker queue.
	DispatchQueueDepth *prometheus.GaugeVec

	// LockWait is time spent acquiring the per-user lock.
	LockWait prometheus.Histogram

	// NotifyTotal counts cross-node notifications by event and outcome.
	NotifyTotal *prometheus.CounterVec

	// ClusterPeers is the number of peer nodes currently known.
	ClusterPeers prometheus.Gauge
}

// NewRegistry creates the metrics registry with all collectors
// registered, including the standard Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "chatmesh",
			Name:      "sessions_active",
			Help:      "Number of logged-in users on this node.",
		}),
		MessagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatmesh",
			Name:      "messages_total",
			Help:      "Dispatched messages by kind and result code.",
		}, []string{"kind", "code"}),
		MessageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chatmesh",
			Name:      "message_duration_seconds",
			Help:      "Handler latency by message kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		DispatchRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatmesh",
			Name:      "dispatch_rejected_total",
			Help:      "Messages refused by the dispatcher.",
		}, []string{"reason"}),
		DispatchQueueDepth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "chatmesh",
			Name:      "dispatch_queue_depth",
			Help:      "Pending messages per dispatcher worker.",
		}, []string{"worker"}),
		LockWait: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chatmesh",
			Name:      "user_lock_wait_seconds",
			Help:      "Time spent acquiring the per-user lock.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5},
		}),
		NotifyTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatmesh",
			Name:      "notify_total",
			Help:      "Cross-node notifications by event and outcome.",
		}, []string{"event", "outcome"}),
		ClusterPeers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "chatmesh",
			Name:      "cluster_peers",
			Help:      "Peer nodes currently known to the directory.",
		}),
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
