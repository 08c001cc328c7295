// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package graph

import (
	"fmt"
	"sort"
)

// Builder accumulates nodes and edges and produces an immutable Store.
// A Builder is not safe for concurrent use.
type Builder struct {
	kind  Kind
	nodes []Node
	edges []Edge
	built bool
}

// NewBuilder returns a Builder for a graph of the given kind.
func NewBuilder(kind Kind) *Builder {
	return &Builder{kind: kind}
}

// Kind returns the kind the builder was created with.
func (b *Builder) Kind() Kind {
	return b.kind
}

// AddNode appends a node and returns its ID.
func (b *Builder) AddNode(label, value string, hasValue bool) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{ID: id, Label: label, Value: value, HasValue: hasValue})
	return id
}

// Len returns the number of nodes added so far.
func (b *Builder) Len() int {
	return len(b.nodes)
}

// AddEdge records an edge between two existing node IDs.
func (b *Builder) AddEdge(from, to int) error {
	if b.built {
		return ErrBuilderConsumed
	}
	n := len(b.nodes)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: (%d, %d) with %d nodes", ErrEdgeOutOfRange, from, to, n)
	}
	b.edges = append(b.edges, Edge{From: from, To: to})
	return nil
}

// Build freezes the builder into a Store. The builder cannot be reused.
func (b *Builder) Build() (*Store, error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}
	b.built = true

	n := len(b.nodes)
	s := &Store{
		kind:      b.kind,
		nodes:     b.nodes,
		edges:     b.edges,
		neighbors: make([][]int, n),
		degree:    make([]int, n),
		byLabel:   make(map[string]int, n),
	}

	// Iterating in reverse leaves the lowest ID for duplicated labels.
	for i := n - 1; i >= 0; i-- {
		s.byLabel[b.nodes[i].Label] = i
	}

	seen := make([]map[int]struct{}, n)
	link := func(from, to int) {
		if seen[from] == nil {
			seen[from] = make(map[int]struct{})
		}
		if _, ok := seen[from][to]; ok {
			return
		}
		seen[from][to] = struct{}{}
		s.neighbors[from] = append(s.neighbors[from], to)
	}

	for _, e := range b.edges {
		s.degree[e.From]++
		s.degree[e.To]++
		link(e.From, e.To)
		if !b.kind.Directed() {
			link(e.To, e.From)
		}
	}

	for i := range s.neighbors {
		sort.Ints(s.neighbors[i])
	}

	return s, nil
}
