// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package api

import (
	"context"
	"time"

	"github.com/tomtom215/filmgourmet/internal/recommend"
	"github.com/tomtom215/filmgourmet/internal/watcher"
)

// Engine is the recommendation surface the handlers use.
// *recommend.Engine satisfies it.
type Engine interface {
	RecommendDetailed(ctx context.Context, labels []string, opts ...recommend.RecommendOption) (*recommend.Response, error)
	Categories() ([]string, error)
	CategoryNames() ([]string, error)
	RandomSample(k int) ([]string, error)
	Find(label string) (int, error)
	Status() recommend.Status
	Ready() bool
	GetMetrics() recommend.Metrics
}

// Reloader reloads the graph from its configured source.
// *watcher.GraphWatcher satisfies it.
type Reloader interface {
	Reload(ctx context.Context) error
}

// reloadStatser is implemented by reloaders that report counters.
type reloadStatser interface {
	Stats() watcher.Stats
}

// HandlerConfig tunes handler behavior.
type HandlerConfig struct {
	// RequestTimeout bounds each engine call.
	RequestTimeout time.Duration

	// RandomK is the sample size for /random when k is omitted.
	RandomK int

	// Version is reported by the health endpoint.
	Version string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_recommend.go: recommendations, random sample, node lookup
//   - handlers_graph.go: categories, graph status, reload
//   - handlers_health.go: health, liveness and readiness probes
type Handler struct {
	engine    Engine
	reloader  Reloader
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates a handler. reloader may be nil, in which case
// POST /graph/reload answers 503.
func NewHandler(engine Engine, reloader Reloader, cfg HandlerConfig) *Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.RandomK <= 0 {
		cfg.RandomK = 10
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Handler{
		engine:    engine,
		reloader:  reloader,
		config:    cfg,
		startTime: time.Now(),
	}
}
