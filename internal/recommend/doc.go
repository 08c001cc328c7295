// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package recommend implements graph-based movie recommendations.
//
// # Architecture
//
// The engine wires four collaborators together:
//
//   - graph/pajek reads the catalog graph from its text exchange format
//   - graph.Store holds nodes, neighbor sets and per-occurrence degrees
//   - algorithms.PersonalizedPageRank scores every node for a teleport set
//   - selection.Policy turns scores into an ordered list of item labels
//
// Labels that start with the category marker ("m-" by default) are category
// tags. They can seed a recommendation but are never returned by one.
//
// # Concurrency
//
// The loaded graph is an immutable snapshot behind an atomic pointer. Load
// builds a complete snapshot and swaps it in, so readers never see a partially
// built graph. Loads are serialized with each other. Every ranking run
// allocates its own score vectors, and the sampling RNG has its own mutex.
//
// # Caching
//
// Ranking is deterministic, so responses are cached per graph version, sorted
// label set, alpha, epsilon and k. Loading a graph bumps the version and clears
// the cache.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	if err := engine.LoadFile(ctx, "./networks/movies_graph.net"); err != nil {
//	    return err
//	}
//	labels, err := engine.Recommend(ctx, []string{"Moana"}, recommend.WithK(5))
//
// # Errors
//
//   - ErrNotReady: no graph has been loaded yet
//   - ErrNotFound / *NotFoundError: an input label is not in the graph
//   - ErrEmptyTeleport: no input labels
//   - ErrInsufficientItems: RandomSample asked for more items than exist
//   - pajek.ErrFormat / *pajek.FormatError: the graph text is malformed
package recommend
