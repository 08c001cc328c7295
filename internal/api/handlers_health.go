// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package api

import (
	"net/http"
	"time"
)

// HealthData is the payload of /health.
type HealthData struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	GraphLoaded  bool    `json:"graph_loaded"`
	GraphVersion int64   `json:"graph_version"`
	Uptime       float64 `json:"uptime"`
}

// Health handles GET /api/v1/health. The service is "healthy" once a graph
// is loaded and "degraded" before that. It always answers 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.engine.Status()
	state := "healthy"
	if !status.Loaded {
		state = "degraded"
	}

	WriteSuccess(w, r, HealthData{
		Status:       state,
		Version:      h.config.Version,
		GraphLoaded:  status.Loaded,
		GraphVersion: status.Version,
		Uptime:       time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 until a graph is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.engine.Ready()
	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	NewResponseWriter(w, r).SuccessWithStatus(statusCode, map[string]interface{}{
		"ready_to_serve": ready,
		"uptime":         time.Since(h.startTime).Seconds(),
	})
}
