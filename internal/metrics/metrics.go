// Package metrics defines Prometheus metrics for the analyzer.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sna_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sna_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sna_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	AlgorithmRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sna_algorithm_runs_total",
			Help: "Total algorithm executions by name and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	AlgorithmDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sna_algorithm_duration_seconds",
			Help:    "Algorithm execution duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"algorithm"},
	)

	LayoutIterations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sna_layout_iterations_total",
			Help: "Total layout solver iterations executed",
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sna_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)

	NodeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sna_nodes_total",
			Help: "Total node count",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sna_edges_total",
			Help: "Total edge count",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		AlgorithmRuns, AlgorithmDuration, LayoutIterations,
		WSConnections,
		NodeCount, EdgeCount,
	)
}
