// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

/*
Package supervisor provides process supervision for the Film Gourmet server
using suture v4.

# Overview

	RootSupervisor ("filmgourmet")
	├── GraphSupervisor ("graph-layer")
	│   └── GraphService (initial load, then file watcher)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A graph file that cannot be watched or loaded only restarts the graph layer.
The API keeps answering from the last loaded graph, or with GRAPH_NOT_LOADED
before the first load.

# Logging

Supervisor events (service panics, restarts, backoff) are written through
sutureslog to a *slog.Logger. Use logging.NewSlogLogger to route them into the
zerolog output:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.Logger()), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Supervisor.ShutdownTimeout,
	})
	tree.AddGraphService(services.NewGraphService(engine, w, engine, services.GraphServiceConfig{Path: w.Path(), Watch: true}, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, srv.Addr, 10*time.Second, logger))
	err = tree.Serve(ctx)

# Restart policy

FailureThreshold failures, decaying at FailureDecay per second, put a
supervisor into FailureBackoff before the next restart. ShutdownTimeout bounds
how long each service gets to return after ctx is canceled; services that miss
it are listed by UnstoppedServiceReport.
*/
package supervisor
