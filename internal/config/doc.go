// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

/*
Package config provides centralized configuration management for Film Gourmet.

Configuration is layered with koanf. Each layer overrides the one before it:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/filmgourmet/config.yaml or /etc/filmgourmet/config.yml
 3. Environment variables, mapped through an explicit table

# Configuration Structure

  - GraphConfig: graph file location and hot-reload settings
  - RecommendConfig: ranking parameters, selection limits, response cache
  - ServerConfig: HTTP bind address and timeouts
  - SecurityConfig: CORS origins and per-IP rate limiting
  - LoggingConfig: zerolog level and output format
  - TracingConfig: OpenTelemetry span exporter
  - SupervisorConfig: suture restart policy

# Environment Variables

Graph:
  - GRAPH_PATH: Pajek .net file (default: ./networks/movies_graph.net)
  - GRAPH_WATCH: reload the graph when the file changes (default: false)
  - GRAPH_WATCH_DEBOUNCE: event debounce window (default: 250ms)

Recommendation:
  - RECOMMEND_ALPHA: damping factor in [0, 1] (default: 0.85)
  - RECOMMEND_EPSILON: L1 convergence threshold (default: 0.001)
  - RECOMMEND_K: default recommendation count (default: 10)
  - RECOMMEND_MAX_LABELS: labels accepted per API request (default: 10)
  - RECOMMEND_SEED: random sample seed (default: 42)

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Logging and tracing:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - OTEL_TRACES_EXPORTER: none, stdout or otlp (default: none)
  - OTEL_EXPORTER_OTLP_ENDPOINT

Duration values use Go syntax ("250ms", "5m"). CORS_ORIGINS accepts a
comma-separated list.

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}

Validate is called by the loader; it applies the validator/v10 struct tags
first and then cross-field rules such as recommend.max_k >= recommend.k.
*/
package config
