// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/filmgourmet/internal/logging"
	"github.com/tomtom215/filmgourmet/internal/recommend"
	"github.com/tomtom215/filmgourmet/internal/watcher"
)

// LabelsData is the payload of the category endpoints.
type LabelsData struct {
	Labels []string `json:"labels"`
	Count  int      `json:"count"`
}

// Categories handles GET /api/v1/categories: every distinct label, sorted.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	h.respondLabels(w, r, h.engine.Categories)
}

// CategoryNames handles GET /api/v1/categories/names: category labels with
// the marker prefix stripped, for display.
func (h *Handler) CategoryNames(w http.ResponseWriter, r *http.Request) {
	h.respondLabels(w, r, h.engine.CategoryNames)
}

func (h *Handler) respondLabels(w http.ResponseWriter, r *http.Request, list func() ([]string, error)) {
	rw := NewResponseWriter(w, r)
	labels, err := list()
	if err != nil {
		respondEngineError(rw, r, err)
		return
	}
	rw.Success(LabelsData{Labels: labels, Count: len(labels)})
}

// GraphStatusData is the payload of /graph/status.
type GraphStatusData struct {
	Graph  recommend.Status  `json:"graph"`
	Engine recommend.Metrics `json:"engine"`
	Reload *watcher.Stats    `json:"reload,omitempty"`
}

// GraphStatus handles GET /api/v1/graph/status. It answers even when no graph
// is loaded; graph.loaded tells the caller.
func (h *Handler) GraphStatus(w http.ResponseWriter, r *http.Request) {
	data := GraphStatusData{
		Graph:  h.engine.Status(),
		Engine: h.engine.GetMetrics(),
	}
	if s, ok := h.reloader.(reloadStatser); ok {
		stats := s.Stats()
		data.Reload = &stats
	}
	WriteSuccess(w, r, data)
}

// ReloadGraph handles POST /api/v1/graph/reload. A failed reload leaves the
// previous graph in service and reports why it failed.
func (h *Handler) ReloadGraph(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.reloader == nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "graph reload is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	if err := h.reloader.Reload(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("manual graph reload failed")
		respondEngineError(rw, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Msg("graph reloaded via API")
	rw.Success(h.engine.Status())
}
