// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package telemetry configures OpenTelemetry tracing.
//
// Init installs a global TracerProvider that exports spans to stdout or to an
// OTLP gRPC collector. Packages create their tracers with otel.Tracer and do
// not depend on this package; until Init runs, their spans go to the no-op
// provider.
package telemetry
