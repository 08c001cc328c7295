// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Graph Metrics
	GraphLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgourmet_graph_loads_total",
			Help: "Total number of graph load attempts by result",
		},
		[]string{"result"}, // "success", "format_error", "io_error", "cancelled"
	)

	GraphLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filmgourmet_graph_load_duration_seconds",
			Help:    "Time spent parsing and installing a graph",
			Buckets: prometheus.DefBuckets,
		},
	)

	GraphNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmgourmet_graph_nodes",
			Help: "Number of nodes in the currently loaded graph",
		},
	)

	GraphEdges = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmgourmet_graph_edges",
			Help: "Number of edges in the currently loaded graph, parallel edges included",
		},
	)

	GraphVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmgourmet_graph_version",
			Help: "Monotonic version of the currently loaded graph",
		},
	)

	// Ranking Metrics
	RankIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filmgourmet_rank_iterations",
			Help:    "Power iterations per ranking run",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 250, 500, 1000, 5000},
		},
	)

	RankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filmgourmet_rank_duration_seconds",
			Help:    "Wall-clock time per ranking run",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	RankRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgourmet_rank_runs_total",
			Help: "Total ranking runs by convergence outcome",
		},
		[]string{"converged"},
	)

	// Recommendation Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgourmet_recommend_requests_total",
			Help: "Total recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "not_ready", "not_found", "invalid", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filmgourmet_recommend_duration_seconds",
			Help:    "End-to-end recommendation latency",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmgourmet_recommend_cache_hits_total",
			Help: "Recommendation responses served from cache",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmgourmet_recommend_cache_misses_total",
			Help: "Recommendation requests that had to be computed",
		},
	)

	// Watcher Metrics
	WatcherReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgourmet_watcher_reloads_total",
			Help: "Graph file reloads triggered by the watcher, by result",
		},
		[]string{"result"}, // "success", "error", "throttled", "breaker_open"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "filmgourmet_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmgourmet_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmgourmet_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmgourmet_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)
)

// RecordGraphLoad records a load attempt. nodes and edges are only applied on success.
func RecordGraphLoad(result string, nodes, edges int, version int64, duration time.Duration) {
	GraphLoadsTotal.WithLabelValues(result).Inc()
	GraphLoadDuration.Observe(duration.Seconds())
	if result == "success" {
		GraphNodes.Set(float64(nodes))
		GraphEdges.Set(float64(edges))
		GraphVersion.Set(float64(version))
	}
}

// RecordRank records one ranking run
func RecordRank(iterations int, converged bool, duration time.Duration) {
	RankIterations.Observe(float64(iterations))
	RankDuration.Observe(duration.Seconds())
	RankRunsTotal.WithLabelValues(strconv.FormatBool(converged)).Inc()
}

// RecordRecommend records a recommendation request outcome
func RecordRecommend(outcome string, duration time.Duration) {
	RecommendRequestsTotal.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordCacheLookup records a recommendation cache hit or miss
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
}

// RecordWatcherReload records a watcher-triggered reload
func RecordWatcherReload(result string) {
	WatcherReloadsTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState publishes a breaker state (0=closed, 1=half-open, 2=open)
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
