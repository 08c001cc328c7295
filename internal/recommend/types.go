// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package recommend

import (
	"time"

	"github.com/tomtom215/filmgourmet/internal/recommend/selection"
)

// Response represents a recommendation response.
type Response struct {
	// Items is the ordered list of recommended items.
	Items []selection.Scored `json:"items"`

	// Metadata contains ranking and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// Labels returns the item labels in order.
func (r *Response) Labels() []string {
	labels := make([]string, len(r.Items))
	for i, item := range r.Items {
		labels[i] = item.Label
	}
	return labels
}

// ResponseMetadata contains ranking and diagnostic information.
type ResponseMetadata struct {
	// Labels are the distinct input labels, in request order.
	Labels []string `json:"labels"`

	// Alpha, Epsilon and K are the effective parameters of the run.
	Alpha   float64 `json:"alpha"`
	Epsilon float64 `json:"epsilon"`
	K       int     `json:"k"`

	// Iterations is the number of ranking iterations performed.
	Iterations int `json:"iterations"`

	// Converged is false when the iteration cap stopped the run.
	Converged bool `json:"converged"`

	// GraphVersion identifies the graph the response was computed on.
	GraphVersion int64 `json:"graph_version"`

	// LatencyMS is the total recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// CacheHit indicates whether the result was served from cache.
	CacheHit bool `json:"cache_hit"`
}

// Status describes the currently loaded graph.
type Status struct {
	Loaded     bool      `json:"loaded"`
	Kind       string    `json:"kind,omitempty"`
	Nodes      int       `json:"nodes"`
	Edges      int       `json:"edges"`
	Items      int       `json:"items"`
	Categories int       `json:"categories"`
	Source     string    `json:"source,omitempty"`
	LoadedAt   time.Time `json:"loaded_at,omitempty"`
	Version    int64     `json:"version"`
}

// Metrics contains recommendation system metrics for observability.
type Metrics struct {
	// RequestCount is the total number of recommendation requests.
	RequestCount int64 `json:"request_count"`

	// CacheHits is the number of cache hits.
	CacheHits int64 `json:"cache_hits"`

	// CacheMisses is the number of cache misses.
	CacheMisses int64 `json:"cache_misses"`

	// CacheSize is the current number of cached responses.
	CacheSize int `json:"cache_size"`

	// ErrorCount is the total number of failed requests.
	ErrorCount int64 `json:"error_count"`

	// LoadCount is the number of successful graph loads.
	LoadCount int64 `json:"load_count"`

	// Ranker is the name of the active ranker.
	Ranker string `json:"ranker"`
}

// RecommendOption overrides a ranking parameter for one call.
type RecommendOption func(*requestOptions)

type requestOptions struct {
	alpha   float64
	epsilon float64
	k       int
}

// WithAlpha sets the damping factor.
func WithAlpha(alpha float64) RecommendOption {
	return func(o *requestOptions) { o.alpha = alpha }
}

// WithEpsilon sets the convergence threshold.
func WithEpsilon(eps float64) RecommendOption {
	return func(o *requestOptions) { o.epsilon = eps }
}

// WithK sets the number of labels to return.
func WithK(k int) RecommendOption {
	return func(o *requestOptions) { o.k = k }
}
