// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package algorithms

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomtom215/filmgourmet/internal/graph"
)

// PersonalizedPageRank ranks nodes by power iteration with a teleport set.
//
// Each iteration computes, for every node i,
//
//	U[i] = alpha * Σ_{j ∈ Neighbors(i)} P[j] / Degree(j)
//
// then spreads the missing mass 1 - ΣU evenly over the teleport nodes, or over
// every node when no teleport set is given. Iteration stops once the L1
// distance between successive vectors is at most Epsilon.
//
// A neighbor with zero degree contributes nothing. Such a node has no incident
// edge and so is never anyone's neighbor; the guard only keeps the arithmetic
// defined.
//
// PersonalizedPageRank holds no per-call state and is safe for concurrent use.
type PersonalizedPageRank struct {
	BaseAlgorithm
	tracer trace.Tracer
}

// NewPersonalizedPageRank creates the ranker.
func NewPersonalizedPageRank() *PersonalizedPageRank {
	return &PersonalizedPageRank{
		BaseAlgorithm: NewBaseAlgorithm("personalized_pagerank"),
		tracer:        otel.Tracer("filmgourmet.algorithms.pagerank"),
	}
}

// Rank runs the iteration over g. A nil teleport slice means uniform restart;
// a non-nil empty slice is rejected with ErrEmptyTeleport. Duplicate teleport
// IDs are counted once.
func (pr *PersonalizedPageRank) Rank(ctx context.Context, g *graph.Store, teleport []int, opts RankOptions) (*RankResult, error) {
	ctx, span := pr.tracer.Start(ctx, "algorithms.PersonalizedPageRank.Rank",
		trace.WithAttributes(
			attribute.Int("node_count", g.Len()),
			attribute.Int("edge_count", g.EdgeCount()),
			attribute.String("graph_kind", g.Kind().String()),
		),
	)
	defer span.End()

	if err := opts.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid options")
		return nil, err
	}

	n := g.Len()
	if n == 0 {
		span.AddEvent("empty_graph")
		return nil, ErrEmptyGraph
	}

	targets, err := teleportTargets(teleport, n)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid teleport set")
		return nil, err
	}

	span.SetAttributes(
		attribute.Float64("alpha", opts.Alpha),
		attribute.Float64("epsilon", opts.Epsilon),
		attribute.Int("max_iterations", opts.MaxIterations),
		attribute.Int("teleport_size", len(targets)),
	)

	start := time.Now()
	p := make([]float64, n)
	u := make([]float64, n)
	for i := range p {
		p[i] = 1.0 / float64(n)
	}

	result := &RankResult{}
	for {
		if ContextCancelled(ctx) {
			span.AddEvent("cancelled", trace.WithAttributes(
				attribute.Int("iterations_completed", result.Iterations),
			))
			return nil, fmt.Errorf("pagerank cancelled after %d iterations: %w", result.Iterations, ctx.Err())
		}

		diff := iterate(g, opts.Alpha, targets, p, u)
		result.Iterations++
		result.Residual = diff
		p, u = u, p

		if diff <= opts.Epsilon {
			result.Converged = true
			break
		}
		if opts.MaxIterations > 0 && result.Iterations >= opts.MaxIterations {
			span.AddEvent("iteration_cap_reached")
			break
		}
	}

	result.Scores = p
	result.Duration = time.Since(start)
	pr.markRun()

	span.SetAttributes(
		attribute.Int("iterations", result.Iterations),
		attribute.Bool("converged", result.Converged),
		attribute.Float64("residual", result.Residual),
	)

	return result, nil
}

// iterate writes the next vector into u from p and returns Σ|p[i]-u[i]|.
// targets nil means uniform restart.
func iterate(g *graph.Store, alpha float64, targets []int, p, u []float64) float64 {
	n := len(p)
	total := 0.0
	for i := 0; i < n; i++ {
		sum := 0.0
		for _, j := range g.Neighbors(i) {
			if d := g.Degree(j); d > 0 {
				sum += p[j] / float64(d)
			}
		}
		u[i] = alpha * sum
		total += u[i]
	}

	leftover := 1.0 - total
	if targets == nil {
		share := leftover / float64(n)
		for i := range u {
			u[i] += share
		}
	} else {
		share := leftover / float64(len(targets))
		for _, t := range targets {
			u[t] += share
		}
	}

	diff := 0.0
	for i := range p {
		diff += math.Abs(p[i] - u[i])
	}
	return diff
}

// teleportTargets validates and de-duplicates a teleport set, keeping first-seen order.
func teleportTargets(teleport []int, n int) ([]int, error) {
	if teleport == nil {
		return nil, nil
	}
	if len(teleport) == 0 {
		return nil, ErrEmptyTeleport
	}

	seen := make(map[int]struct{}, len(teleport))
	out := make([]int, 0, len(teleport))
	for _, id := range teleport {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrTeleportOutOfRange, id, n)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
