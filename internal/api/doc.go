// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

/*
Package api provides the HTTP REST API for Film Gourmet.

Endpoints (all under /api/v1 unless noted):

	GET  /recommendations?label=Frozen&k=10   ranked recommendations
	POST /recommendations                      same, JSON body
	GET  /categories                           every distinct label, sorted
	GET  /categories/names                     category names without the m- marker
	GET  /random?k=10                          uniform sample of item labels
	GET  /nodes/find?label=Frozen              node identifier for a label
	GET  /graph/status                         loaded graph, engine and reload counters
	POST /graph/reload                         reload the graph file now
	GET  /health, /health/live, /health/ready  probes
	GET  /metrics                              Prometheus exposition (root path)

Every JSON response uses the APIResponse envelope:

	{
	  "success": false,
	  "error": {"code": "NOT_FOUND", "message": "recommend: label \"Zootopia\" not found"},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}
	}

Error mapping:

  - malformed graph on reload: 422 INVALID_GRAPH
  - unknown label: 404 NOT_FOUND
  - no graph loaded: 503 GRAPH_NOT_LOADED
  - bad parameters, empty label list, sample larger than the catalog: 400 VALIDATION_ERROR
  - reload breaker open: 503 SERVICE_UNAVAILABLE

Middleware stack: request ID with logging context, real IP, panic recovery,
Prometheus request metrics, CORS (go-chi/cors), per-IP rate limiting
(go-chi/httprate, not applied to health probes), security headers and gzip
for JSON bodies outside the health routes.

Usage:

	handler := api.NewHandler(engine, graphWatcher, api.HandlerConfig{
	    RequestTimeout: cfg.Server.RequestTimeout,
	    RandomK:        cfg.Recommend.RandomK,
	})
	router := api.NewRouter(handler, &api.ChiMiddlewareConfig{...})
	srv := &http.Server{Handler: router.SetupChi()}
*/
package api
