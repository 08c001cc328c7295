// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package graph provides the in-memory multigraph that recommendations are
// computed over.
//
// # Model
//
// Nodes are stored in an arena and addressed by a dense zero-based ID. Each node
// has a label and an optional opaque value. Labels beginning with CategoryPrefix
// are category tags; all other labels are items.
//
// Edges may repeat. Degree counts every occurrence (a loop counts twice), while
// Neighbors exposes the adjacency as a set.
//
// # Usage
//
//	b := graph.NewBuilder(graph.UndirectedMulti)
//	moana := b.AddNode("Moana", "", false)
//	tag := b.AddNode("m-Animation", "", false)
//	_ = b.AddEdge(moana, tag)
//	g, err := b.Build()
//
// # Thread Safety
//
// Builder is single-goroutine. Store is read-only after Build and safe for
// concurrent use.
package graph
