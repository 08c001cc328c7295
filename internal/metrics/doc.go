// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

/*
Package metrics provides Prometheus metrics for the recommendation service.

Collectors are package-level and registered with the default registry through
promauto, so importing the package is enough to expose them.

# Overview

The package provides metrics for:
  - graph loads (result, duration, node and edge counts, version)
  - ranking runs (iterations, duration, convergence)
  - recommendation requests and cache efficiency
  - watcher-triggered reloads and circuit breaker state
  - HTTP request latency and throughput

# Metrics Endpoint

Metrics are exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Usage

	start := time.Now()
	labels, err := engine.Recommend(ctx, []string{"Moana"})
	metrics.RecordRecommend("ok", time.Since(start))
*/
package metrics
