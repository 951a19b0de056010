package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_mcp"

// Metrics holds the Prometheus counters, histograms, and gauges for the tool server.
type Metrics struct {
	// Upstream API metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: upstream={host}, outcome={success,transport_error,status_error,decode_error}
	UpstreamDuration *prometheus.HistogramVec // labels: upstream={host}

	// Tool metrics.
	ToolCalls *prometheus.CounterVec // labels: tool={name}, outcome={ok,unavailable}

	// Location cache metrics.
	LocationCache *prometheus.CounterVec // labels: result={hit,miss}

	ServerRunning prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by host and outcome.",
		}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"upstream"}),
		ToolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
		LocationCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_cache_total",
			Help:      "ZIP code cache lookups by result.",
		}, []string{"result"}),
		ServerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "server_running",
			Help:      "1 while the MCP server is serving a session, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.ToolCalls,
		m.LocationCache,
		m.ServerRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "upstream_requests_total"}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "upstream_request_duration_seconds"}, []string{"upstream"}),
		ToolCalls:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "tool_calls_total"}, []string{"tool", "outcome"}),
		LocationCache:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "location_cache_total"}, []string{"result"}),
		ServerRunning:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "server_running"}),
	}
}
