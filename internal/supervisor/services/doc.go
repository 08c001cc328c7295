// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

/*
Package services provides suture.Service wrappers for the server's
long-running components.

Each wrapper implements:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer, which suture uses to name the service in its logs.

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Calls Shutdown with a timeout when ctx is canceled
  - http.ErrServerClosed is a clean exit

Graph (GraphService):
  - Loads the graph file at startup, retrying until it succeeds
  - Then runs the file watcher when graph.watch is enabled
  - A watcher setup failure is returned so the supervisor restarts the service
*/
package services
