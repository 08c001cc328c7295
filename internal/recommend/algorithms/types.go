// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package algorithms

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors for ranking.
var (
	// ErrEmptyGraph indicates a graph with no nodes.
	ErrEmptyGraph = errors.New("algorithms: graph has no nodes")

	// ErrEmptyTeleport indicates a personalized run with no teleport nodes.
	ErrEmptyTeleport = errors.New("algorithms: teleport set is empty")

	// ErrTeleportOutOfRange indicates a teleport ID that is not a node.
	ErrTeleportOutOfRange = errors.New("algorithms: teleport node out of range")

	// ErrInvalidOptions indicates RankOptions failed validation.
	ErrInvalidOptions = errors.New("algorithms: invalid rank options")
)

// RankOptions configures a ranking run.
type RankOptions struct {
	// Alpha scales neighbor contributions (damping factor).
	// Must be in [0, 1]. Default: 0.85.
	Alpha float64

	// Epsilon is the L1 distance between successive vectors at which iteration stops.
	// Must be > 0. Default: 1e-3.
	Epsilon float64

	// MaxIterations caps iteration when convergence is slow. 0 means no cap.
	// Default: 10000.
	MaxIterations int
}

// DefaultRankOptions returns the options used for interactive recommendations.
func DefaultRankOptions() RankOptions {
	return RankOptions{
		Alpha:         0.85,
		Epsilon:       1e-3,
		MaxIterations: 10000,
	}
}

// Validate checks the options.
func (o RankOptions) Validate() error {
	if math.IsNaN(o.Alpha) || o.Alpha < 0 || o.Alpha > 1 {
		return fmt.Errorf("%w: alpha %v must be in [0, 1]", ErrInvalidOptions, o.Alpha)
	}
	if !(o.Epsilon > 0) {
		return fmt.Errorf("%w: epsilon %v must be positive", ErrInvalidOptions, o.Epsilon)
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations %d must not be negative", ErrInvalidOptions, o.MaxIterations)
	}
	return nil
}

// RankResult is the outcome of a ranking run.
type RankResult struct {
	// Scores holds one score per node, indexed by node ID. Scores sum to 1.
	Scores []float64

	// Iterations is the number of update steps performed.
	Iterations int

	// Converged is false only when MaxIterations stopped the run.
	Converged bool

	// Residual is the L1 distance of the last step.
	Residual float64

	// Duration is the wall-clock time spent iterating.
	Duration time.Duration
}
