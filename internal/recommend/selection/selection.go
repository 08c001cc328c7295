// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

// Package selection turns node scores into an ordered list of item labels.
package selection

import (
	"sort"
	"strings"

	"github.com/tomtom215/filmgourmet/internal/graph"
)

// Scored is one accepted node with the keys it was ordered by.
type Scored struct {
	ID     int     `json:"id"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
	Degree int     `json:"degree"`
}

// Policy selects the top items from a score vector.
//
// Nodes are ordered by score descending, then degree descending, then ID
// ascending, which is a strict total order. Category nodes and excluded labels
// are skipped while walking that order.
type Policy struct {
	// CategoryPrefix marks labels that are never returned. Empty means graph.CategoryPrefix.
	CategoryPrefix string
}

// DefaultPolicy returns the policy using the standard category marker.
func DefaultPolicy() Policy {
	return Policy{CategoryPrefix: graph.CategoryPrefix}
}

// Select returns up to limit labels. scores must hold one entry per node.
// Fewer than limit labels are returned when not enough nodes qualify.
func (p Policy) Select(g *graph.Store, scores []float64, exclude []string, limit int) []string {
	ranked := p.Ranked(g, scores, exclude, limit)
	labels := make([]string, len(ranked))
	for i, r := range ranked {
		labels[i] = r.Label
	}
	return labels
}

// Ranked is Select with the ordering keys kept alongside each label.
func (p Policy) Ranked(g *graph.Store, scores []float64, exclude []string, limit int) []Scored {
	if limit <= 0 || g.Len() == 0 {
		return []Scored{}
	}

	n := g.Len()
	if len(scores) < n {
		n = len(scores)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if scores[i] != scores[j] {
			return scores[i] > scores[j]
		}
		if di, dj := g.Degree(i), g.Degree(j); di != dj {
			return di > dj
		}
		return i < j
	})

	skip := make(map[string]struct{}, len(exclude))
	for _, label := range exclude {
		skip[label] = struct{}{}
	}

	prefix := p.CategoryPrefix
	if prefix == "" {
		prefix = graph.CategoryPrefix
	}

	capacity := limit
	if capacity > n {
		capacity = n
	}
	out := make([]Scored, 0, capacity)
	for _, id := range order {
		label := g.Label(id)
		if strings.HasPrefix(label, prefix) {
			continue
		}
		if _, ok := skip[label]; ok {
			continue
		}
		out = append(out, Scored{ID: id, Label: label, Score: scores[id], Degree: g.Degree(id)})
		if len(out) == limit {
			break
		}
	}
	return out
}
