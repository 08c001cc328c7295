// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package watcher hot-reloads the catalog graph when its file changes.
//
// Change events come from fsnotify and are debounced. Reloads pass through an
// x/time/rate limiter and a gobreaker circuit breaker before reaching the
// Loader, which is normally the recommendation engine.
package watcher
