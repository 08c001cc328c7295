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
	"github.com/tomtom215/filmgourmet/internal/recommend/selection"
)

// RecommendationsData is the payload of /recommendations.
type RecommendationsData struct {
	Recommendations []string `json:"recommendations"`

	// Items and Metadata are only set in verbose mode.
	Items    []selection.Scored          `json:"items,omitempty"`
	Metadata *recommend.ResponseMetadata `json:"metadata,omitempty"`
}

// Recommendations handles GET and POST /api/v1/recommendations.
//
// GET takes repeated label parameters:
//
//	GET /api/v1/recommendations?label=Frozen&label=Coco&k=5&verbose=true
//
// POST takes a JSON RecommendRequest:
//
//	{"labels": ["Frozen"], "k": 5, "alpha": 0.85, "eps": 0.001}
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req *RecommendRequest
	var err error
	switch r.Method {
	case http.MethodGet:
		req, err = parseRecommendQuery(r.URL.Query())
	case http.MethodPost:
		req, err = decodeRecommendBody(r)
	default:
		rw.Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "method not allowed")
		return
	}
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if apiErr := validateRequest(req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	resp, err := h.engine.RecommendDetailed(ctx, req.Labels, req.options()...)
	if err != nil {
		respondEngineError(rw, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Strs("labels", req.Labels).
		Int("results", len(resp.Items)).
		Bool("cache_hit", resp.Metadata.CacheHit).
		Msg("recommendations served")

	data := RecommendationsData{Recommendations: resp.Labels()}
	if req.Verbose {
		data.Items = resp.Items
		data.Metadata = &resp.Metadata
	}
	rw.Success(data)
}

// RandomData is the payload of /random.
type RandomData struct {
	Items []string `json:"items"`
}

// Random handles GET /api/v1/random?k=10, a uniform sample of item labels.
func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	k, err := intParam(r, "k", h.config.RandomK)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	items, err := h.engine.RandomSample(k)
	if err != nil {
		respondEngineError(rw, r, err)
		return
	}
	rw.Success(RandomData{Items: items})
}

// NodeData is the payload of /nodes/find.
type NodeData struct {
	Label string `json:"label"`
	ID    int    `json:"id"`
}

// FindNode handles GET /api/v1/nodes/find?label=Frozen.
func (h *Handler) FindNode(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	label := r.URL.Query().Get("label")
	if label == "" {
		rw.ValidationError("label is required", map[string]interface{}{"field": "label"})
		return
	}

	id, err := h.engine.Find(label)
	if err != nil {
		respondEngineError(rw, r, err)
		return
	}
	rw.Success(NodeData{Label: label, ID: id})
}
