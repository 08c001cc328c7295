// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package pajek

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/filmgourmet/internal/graph"
)

const moanaNet = `*Vertices 4
1 "Moana"
2 "m-Animation"
3 "Frozen" 0.5
4 "m-Animation"
*Edges
1 2
2 3
3 4 2.0
4 1
`

func TestParse_Scenario(t *testing.T) {
	g, err := ParseString(moanaNet)
	require.NoError(t, err)

	assert.Equal(t, graph.UndirectedMulti, g.Kind())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 4, g.EdgeCount())

	n, err := g.Node(2)
	require.NoError(t, err)
	assert.Equal(t, "Frozen", n.Label)
	assert.True(t, n.HasValue)
	assert.Equal(t, "0.5", n.Value)

	n, err = g.Node(0)
	require.NoError(t, err)
	assert.False(t, n.HasValue)

	assert.Equal(t, []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}}, g.Edges())
	for id := 0; id < 4; id++ {
		assert.Equal(t, 2, g.Degree(id))
	}
}

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		want      graph.Kind
	}{
		{"edges", "*edges", graph.UndirectedMulti},
		{"Edges capitalized", "*Edges", graph.UndirectedMulti},
		{"arcs", "*arcs", graph.DirectedMulti},
		{"Arcs with trailing tokens", "*Arcs :1 \"links\"", graph.DirectedMulti},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "header\n1 \"a\"\n2 \"b\"\n" + tt.directive + "\n1 2\n"
			g, err := ParseString(src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Kind())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		reason string
		line   int
	}{
		{"empty source", "", ReasonEmptySource, 0},
		{"no directive", "h\n1 \"a\"\n", ReasonMissingSection, 2},
		{"unknown section", "h\n1 \"a\"\n*links\n", ReasonUnknownSection, 3},
		{"bare marker", "h\n1 \"a\"\n*\n", ReasonUnknownSection, 3},
		{"unquoted label", "h\n1 a\n*edges\n", ReasonBadNodeLine, 2},
		{"unterminated label", "h\n1 \"a\n*edges\n", ReasonBadNodeLine, 2},
		{"quote in label", "h\n1 \"a\"b\" c\n*edges\n", ReasonBadNodeLine, 2},
		{"non-numeric index", "h\nx \"a\"\n*edges\n", ReasonBadNodeLine, 2},
		{"zero index", "h\n0 \"a\"\n*edges\n", ReasonBadNodeLine, 2},
		{"duplicate index", "h\n1 \"a\"\n1 \"b\"\n*edges\n", ReasonDuplicateNode, 3},
		{"gap in indices", "h\n1 \"a\"\n3 \"c\"\n*edges\n", ReasonMissingNode, 3},
		{"edge out of range", "h\n1 \"a\"\n2 \"b\"\n*edges\n1 3\n", ReasonEdgeOutOfRange, 5},
		{"edge index zero", "h\n1 \"a\"\n*edges\n0 1\n", ReasonEdgeOutOfRange, 4},
		{"single token edge", "h\n1 \"a\"\n*edges\n1\n", ReasonBadEdgeLine, 4},
		{"non-numeric edge", "h\n1 \"a\"\n*edges\n1 b\n", ReasonBadEdgeLine, 4},
		{"second directive", "h\n1 \"a\"\n*edges\n1 1\n*arcs\n", ReasonBadEdgeLine, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseString(tt.src)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ErrFormat))

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.reason, fe.Reason)
			assert.Equal(t, tt.line, fe.Line)
		})
	}
}

func TestParse_Lenient(t *testing.T) {
	src := "*Vertices 3\r\n" +
		"2 \"b\"\r\n" +
		"\r\n" +
		"1 \"a\"   \r\n" +
		"3 \"c d\" some value\r\n" +
		"*edges\r\n" +
		"1 2 1.0 extra\r\n" +
		"   \r\n" +
		"3 3\r\n"

	g, err := ParseString(src)
	require.NoError(t, err)

	labels := make([]string, 0, g.Len())
	for _, n := range g.Nodes() {
		labels = append(labels, n.Label)
	}
	assert.Equal(t, []string{"a", "b", "c d"}, labels, "ID is index-1 regardless of line order")

	n, _ := g.Node(2)
	assert.Equal(t, "some value", n.Value)
	assert.Equal(t, []graph.Edge{{From: 0, To: 1}, {From: 2, To: 2}}, g.Edges())
	assert.Equal(t, 2, g.Degree(2))
}

func TestParse_EmptyGraph(t *testing.T) {
	g, err := ParseString("*Vertices 0\n*Edges\n")
	require.NoError(t, err)
	assert.Zero(t, g.Len())
	assert.Zero(t, g.EdgeCount())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies_graph.net")
	require.NoError(t, os.WriteFile(path, []byte(moanaNet), 0o600))

	g, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	_, err = ParseFile(filepath.Join(dir, "missing.net"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrFormat))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormatError_Message(t *testing.T) {
	err := newFormatError(3, ReasonBadNodeLine, "oops")
	assert.Equal(t, `pajek: line 3: unparsable node line: "oops"`, err.Error())

	err = newFormatError(0, ReasonEmptySource, "")
	assert.Equal(t, "pajek: line 0: empty source", err.Error())
}

func edgeMultiset(g *graph.Store) []graph.Edge {
	edges := g.Edges()
	if !g.Kind().Directed() {
		for i, e := range edges {
			if e.From > e.To {
				edges[i] = graph.Edge{From: e.To, To: e.From}
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

func TestWrite_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		kind  graph.Kind
		edges [][2]int
	}{
		{"undirected with parallels and loop", graph.UndirectedMulti, [][2]int{{0, 1}, {1, 0}, {2, 2}, {3, 1}}},
		{"directed with parallels", graph.DirectedMulti, [][2]int{{0, 1}, {0, 1}, {1, 0}, {3, 2}}},
		{"no edges", graph.DirectedMulti, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := graph.NewBuilder(tt.kind)
			b.AddNode("Moana", "", false)
			b.AddNode("m-Animation", "", false)
			b.AddNode("Frozen", "2013", true)
			b.AddNode(" spaced label ", "", false)
			for _, e := range tt.edges {
				require.NoError(t, b.AddEdge(e[0], e[1]))
			}
			orig, err := b.Build()
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, orig))

			parsed, err := Parse(&buf)
			require.NoError(t, err)

			assert.Equal(t, orig.Len(), parsed.Len())
			assert.Equal(t, orig.Kind(), parsed.Kind())
			assert.Equal(t, orig.Nodes(), parsed.Nodes())
			assert.Equal(t, edgeMultiset(orig), edgeMultiset(parsed))
		})
	}
}

func TestWrite_RejectsQuotedLabel(t *testing.T) {
	b := graph.NewBuilder(graph.UndirectedMulti)
	b.AddNode(`say "hi"`, "", false)
	g, err := b.Build()
	require.NoError(t, err)

	err = Write(&bytes.Buffer{}, g)
	assert.ErrorIs(t, err, ErrUnwritableLabel)
}
