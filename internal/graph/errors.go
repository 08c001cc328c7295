// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package graph

import "errors"

// Sentinel errors returned by Store and Builder.
var (
	// ErrNodeNotFound indicates a node ID outside [0, Len()).
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeOutOfRange indicates an edge endpoint that is not a declared node.
	ErrEdgeOutOfRange = errors.New("graph: edge endpoint out of range")

	// ErrBuilderConsumed indicates a Builder was used after Build.
	ErrBuilderConsumed = errors.New("graph: builder already built")
)
