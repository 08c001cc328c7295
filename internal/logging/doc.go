// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package logging provides the zerolog-based global logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//	logging.Info().Str("path", path).Msg("graph loaded")
//	logging.Ctx(ctx).Debug().Msg("handling request")
//
// Components take a zerolog.Logger by value and add their own fields:
//
//	logger := logging.WithComponent("watcher")
//
// Libraries that require log/slog receive NewSlogLogger(logger), which writes
// through the same zerolog pipeline.
//
// # Configuration
//
// Level, format and caller reporting come from the logging section of the
// service configuration (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
package logging
