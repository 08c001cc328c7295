// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package graph

import (
	"sort"
	"strings"
)

// CategoryPrefix marks a label as a category tag rather than an item.
const CategoryPrefix = "m-"

// IsCategory reports whether label carries the category marker.
func IsCategory(label string) bool {
	return strings.HasPrefix(label, CategoryPrefix)
}

// Kind is the link semantics of a loaded graph. It is fixed when the graph is
// built and never changes afterwards.
type Kind int

const (
	// UndirectedMulti is an undirected graph permitting parallel edges and loops.
	UndirectedMulti Kind = iota

	// DirectedMulti is a directed graph permitting parallel arcs and loops.
	DirectedMulti
)

// String returns the kind name used in logs and API responses.
func (k Kind) String() string {
	switch k {
	case UndirectedMulti:
		return "undirected-multi"
	case DirectedMulti:
		return "directed-multi"
	default:
		return "unknown"
	}
}

// Directed reports whether edges are ordered pairs.
func (k Kind) Directed() bool {
	return k == DirectedMulti
}

// Node is a labeled vertex. ID is its dense zero-based position in the store.
type Node struct {
	ID       int
	Label    string
	Value    string
	HasValue bool
}

// Edge is a link between two node IDs. For DirectedMulti graphs From is the
// origin of the arc.
type Edge struct {
	From int
	To   int
}

// Store is an immutable in-memory multigraph. Build one with a Builder.
//
// Nodes live in an arena indexed by ID. Adjacency is kept as sorted, de-duplicated
// neighbor lists while degree is counted per edge occurrence, so parallel edges
// show up once in Neighbors but several times in Degree.
//
// A Store is safe for concurrent readers; nothing mutates it after Build.
type Store struct {
	kind      Kind
	nodes     []Node
	edges     []Edge
	neighbors [][]int
	degree    []int
	byLabel   map[string]int
}

// Kind returns the graph kind.
func (s *Store) Kind() Kind {
	return s.kind
}

// Len returns the number of nodes.
func (s *Store) Len() int {
	return len(s.nodes)
}

// EdgeCount returns the number of edges, parallel edges included.
func (s *Store) EdgeCount() int {
	return len(s.edges)
}

// Node returns the node with the given ID.
func (s *Store) Node(id int) (Node, error) {
	if !s.valid(id) {
		return Node{}, ErrNodeNotFound
	}
	return s.nodes[id], nil
}

// Label returns the label of node id, or "" when id is out of range.
func (s *Store) Label(id int) string {
	if !s.valid(id) {
		return ""
	}
	return s.nodes[id].Label
}

// Nodes returns a copy of all nodes in ID order.
func (s *Store) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Edges returns a copy of all edges in insertion order.
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Neighbors returns the adjacency set of node id in ascending order.
// For undirected graphs both endpoints of an edge see each other; for directed
// graphs only successors are returned. The returned slice must not be modified.
func (s *Store) Neighbors(id int) []int {
	if !s.valid(id) {
		return nil
	}
	return s.neighbors[id]
}

// Degree returns the number of edge ends incident to node id, counted per
// occurrence. A self-loop contributes two. For directed graphs this is
// in-degree plus out-degree.
func (s *Store) Degree(id int) int {
	if !s.valid(id) {
		return 0
	}
	return s.degree[id]
}

// FindLabel returns the lowest node ID whose label equals label exactly.
func (s *Store) FindLabel(label string) (int, bool) {
	id, ok := s.byLabel[label]
	return id, ok
}

// Labels returns the distinct labels of the graph in ascending order.
func (s *Store) Labels() []string {
	out := make([]string, 0, len(s.byLabel))
	for label := range s.byLabel {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

func (s *Store) valid(id int) bool {
	return id >= 0 && id < len(s.nodes)
}
