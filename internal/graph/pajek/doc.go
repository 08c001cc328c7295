// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package pajek reads and writes the Pajek-style .net exchange format used for
// movie catalog graphs.
//
// # Format
//
//	*Vertices 4
//	1 "Moana"
//	2 "m-Animation"
//	3 "Frozen" 0.5
//	4 "m-Animation"
//	*Edges
//	1 2
//	2 3 1.0
//
// The first line is a header and is never interpreted. Node lines carry a
// 1-based index, a quoted label and an optional trailing value. The first line
// starting with '*' selects the link section: "edges" for an undirected
// multigraph, "arcs" for a directed one. Edge lines name two 1-based endpoints;
// trailing tokens such as weights are ignored.
package pajek
