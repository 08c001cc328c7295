// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package algorithms

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/filmgourmet/internal/graph"
)

// Ranker scores every node of a graph.
type Ranker interface {
	// Name returns the algorithm identifier used in logs and metrics.
	Name() string

	// Rank scores g. A nil teleport slice requests uniform restart.
	Rank(ctx context.Context, g *graph.Store, teleport []int, opts RankOptions) (*RankResult, error)
}

// BaseAlgorithm provides common bookkeeping for rankers.
type BaseAlgorithm struct {
	name      string
	runs      atomic.Int64
	lastRunAt atomic.Int64
}

// NewBaseAlgorithm creates a new base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{name: name}
}

// Name returns the algorithm identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// Runs returns how many runs completed successfully.
func (b *BaseAlgorithm) Runs() int64 {
	return b.runs.Load()
}

// LastRunAt returns when the last successful run finished, or the zero time.
func (b *BaseAlgorithm) LastRunAt() time.Time {
	ns := b.lastRunAt.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

func (b *BaseAlgorithm) markRun() {
	b.runs.Add(1)
	b.lastRunAt.Store(time.Now().UnixNano())
}

// Interface compliance.
var _ Ranker = (*PersonalizedPageRank)(nil)

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
