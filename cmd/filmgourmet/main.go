// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package main is the filmgourmet command.
//
// filmgourmet ranks the movies of a Pajek catalog graph by personalized
// PageRank. It runs either as a long-lived HTTP server or as one-shot
// subcommands against a graph file:
//
//	filmgourmet serve                       # HTTP API on server.host:server.port
//	filmgourmet recommend Moana -k 5        # top 5 movies for a label
//	filmgourmet recommend m-Animation Heat  # several labels share the teleport set
//	filmgourmet categories --names          # category names without the m- marker
//	filmgourmet random -k 10                # uniform sample of movies
//	filmgourmet find Frozen                 # node identifier of a label
//	filmgourmet validate movies.net         # parse a file and print its shape
//
// # Configuration
//
// Settings are layered by internal/config (highest priority wins):
//   - Command-line flags (--graph, -k, --alpha, --eps)
//   - Environment variables (GRAPH_PATH, RECOMMEND_ALPHA, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (--config, CONFIG_PATH, or ./config.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// serve shuts down gracefully on SIGINT and SIGTERM: the HTTP server drains
// in-flight requests, the graph watcher stops, and pending spans are flushed.
package main

import (
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
