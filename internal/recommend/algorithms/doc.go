// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package algorithms implements the graph ranking algorithms used by the
// recommendation engine.
//
// Each ranker implements the Ranker interface and is handed to the engine at
// construction time.
//
// # Personalized PageRank
//
// PersonalizedPageRank is topic-sensitive PageRank computed by power iteration.
// With a teleport set, the probability mass lost to damping is returned only to
// the teleport nodes, which biases scores toward their neighborhood. Without
// one, the mass is spread over every node and the result is plain PageRank.
//
//	ranker := algorithms.NewPersonalizedPageRank()
//	res, err := ranker.Rank(ctx, g, []int{moanaID}, algorithms.DefaultRankOptions())
//	if err != nil {
//	    return err
//	}
//	score := res.Scores[frozenID]
//
// Alpha trades neighborhood influence against restart, and Epsilon trades
// iterations against precision: tighter values suit offline exploration, looser
// ones suit interactive requests.
//
// # Tracing
//
// Every run is recorded as an OpenTelemetry span through the global tracer
// provider. Without a configured provider the spans are no-ops.
//
// # Thread Safety
//
// Rankers keep no per-call state. Every Rank call allocates its own score
// buffers, so one ranker can serve many goroutines against the same graph.
package algorithms
