// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/filmgourmet/internal/graph"
)

// catalog builds: 0 A, 1 m-Drama, 2 B, 3 C, 4 D, 5 A(dup label)
// Degrees: A=1, m-Drama=4, B=2, C=2, D=1, A(dup)=0
func catalog(t *testing.T) *graph.Store {
	t.Helper()
	b := graph.NewBuilder(graph.UndirectedMulti)
	for _, l := range []string{"A", "m-Drama", "B", "C", "D", "A"} {
		b.AddNode(l, "", false)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {1, 3}, {1, 4}, {2, 3}} {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestSelect(t *testing.T) {
	g := catalog(t)

	tests := []struct {
		name    string
		scores  []float64
		exclude []string
		limit   int
		want    []string
	}{
		{
			name:   "score order, category skipped",
			scores: []float64{0.1, 0.5, 0.3, 0.2, 0.05, 0.0},
			limit:  3,
			want:   []string{"B", "C", "A"},
		},
		{
			name:   "degree breaks score ties",
			scores: []float64{0.2, 0.2, 0.2, 0.2, 0.2, 0.0},
			limit:  3,
			want:   []string{"B", "C", "A"},
		},
		{
			name:   "id breaks score and degree ties",
			scores: []float64{0.1, 0.0, 0.1, 0.1, 0.1, 0.1},
			limit:  10,
			want:   []string{"B", "C", "A", "D", "A"},
		},
		{
			name:    "excluded label removes every node carrying it",
			scores:  []float64{0.9, 0.5, 0.3, 0.2, 0.05, 0.8},
			exclude: []string{"A"},
			limit:   10,
			want:    []string{"B", "C", "D"},
		},
		{
			name:    "excluding a category is harmless",
			scores:  []float64{0.1, 0.5, 0.3, 0.2, 0.05, 0.0},
			exclude: []string{"m-Drama", "unknown"},
			limit:   1,
			want:    []string{"B"},
		},
		{
			name:   "zero limit",
			scores: []float64{0.1, 0.5, 0.3, 0.2, 0.05, 0.0},
			limit:  0,
			want:   []string{},
		},
		{
			name:   "negative limit",
			scores: []float64{0.1, 0.5, 0.3, 0.2, 0.05, 0.0},
			limit:  -3,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultPolicy().Select(g, tt.scores, tt.exclude, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRanked_KeepsKeys(t *testing.T) {
	g := catalog(t)
	got := DefaultPolicy().Ranked(g, []float64{0.1, 0.5, 0.3, 0.2, 0.05, 0.0}, nil, 2)

	require.Len(t, got, 2)
	assert.Equal(t, Scored{ID: 2, Label: "B", Score: 0.3, Degree: 2}, got[0])
	assert.Equal(t, Scored{ID: 3, Label: "C", Score: 0.2, Degree: 2}, got[1])
}

func TestPolicy_CustomPrefix(t *testing.T) {
	b := graph.NewBuilder(graph.UndirectedMulti)
	b.AddNode("genre:Drama", "", false)
	b.AddNode("m-NotACategoryHere", "", false)
	g, err := b.Build()
	require.NoError(t, err)

	p := Policy{CategoryPrefix: "genre:"}
	assert.Equal(t, []string{"m-NotACategoryHere"}, p.Select(g, []float64{0.9, 0.1}, nil, 5))

	var zero Policy
	assert.Equal(t, []string{"genre:Drama"}, zero.Select(g, []float64{0.9, 0.1}, nil, 5))
}

func TestSelect_Deterministic(t *testing.T) {
	g := catalog(t)
	scores := []float64{0.2, 0.2, 0.2, 0.2, 0.2, 0.2}
	first := DefaultPolicy().Select(g, scores, nil, 10)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, DefaultPolicy().Select(g, scores, nil, 10))
	}
}
