// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package pajek

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/filmgourmet/internal/graph"
)

// SectionMarker starts the link-section directive line.
const SectionMarker = '*'

// Link-section keywords. Matching is case-insensitive.
const (
	keywordEdges = "edges"
	keywordArcs  = "arcs"
)

// maxLineBytes bounds a single line; label lines in real catalogs stay far below it.
const maxLineBytes = 1 << 20

type nodeLine struct {
	line     int
	label    string
	value    string
	hasValue bool
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*graph.Store, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open graph file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ParseString parses graph text held in memory.
func ParseString(text string) (*graph.Store, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a complete graph from r. The first line is a header and is
// ignored. Node declarations follow until the first line starting with '*',
// whose keyword selects the graph kind; every remaining line is an edge.
//
// Any malformed line aborts the parse with a *FormatError and no graph.
func Parse(r io.Reader) (*graph.Store, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	if _, ok := next(); !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read graph source: %w", err)
		}
		return nil, newFormatError(0, ReasonEmptySource, "")
	}

	declared := make(map[int]nodeLine)
	maxIndex := 0
	var builder *graph.Builder

	for {
		raw, ok := next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if trimmed[0] == SectionMarker {
			kind, err := parseDirective(lineNo, trimmed)
			if err != nil {
				return nil, err
			}
			builder, err = buildNodes(kind, declared, maxIndex)
			if err != nil {
				return nil, err
			}
			break
		}

		index, nl, err := parseNodeLine(lineNo, raw)
		if err != nil {
			return nil, err
		}
		if _, dup := declared[index]; dup {
			return nil, newFormatError(lineNo, ReasonDuplicateNode, raw)
		}
		declared[index] = nl
		if index > maxIndex {
			maxIndex = index
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read graph source: %w", err)
	}
	if builder == nil {
		return nil, newFormatError(lineNo, ReasonMissingSection, "")
	}

	for {
		raw, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		from, to, err := parseEdgeLine(lineNo, raw, builder.Len())
		if err != nil {
			return nil, err
		}
		if err := builder.AddEdge(from, to); err != nil {
			return nil, newFormatError(lineNo, ReasonEdgeOutOfRange, raw)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read graph source: %w", err)
	}

	return builder.Build()
}

// parseDirective maps "*edges" / "*arcs" to a graph kind.
func parseDirective(lineNo int, line string) (graph.Kind, error) {
	fields := strings.Fields(line[1:])
	keyword := ""
	if len(fields) > 0 {
		keyword = strings.ToLower(fields[0])
	}
	switch keyword {
	case keywordEdges:
		return graph.UndirectedMulti, nil
	case keywordArcs:
		return graph.DirectedMulti, nil
	default:
		return 0, newFormatError(lineNo, ReasonUnknownSection, line)
	}
}

// parseNodeLine splits `index "label"` or `index "label" value`.
func parseNodeLine(lineNo int, raw string) (int, nodeLine, error) {
	parts := strings.Split(strings.TrimSpace(raw), `"`)
	if len(parts) != 3 {
		return 0, nodeLine{}, newFormatError(lineNo, ReasonBadNodeLine, raw)
	}

	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || index < 1 {
		return 0, nodeLine{}, newFormatError(lineNo, ReasonBadNodeLine, raw)
	}

	value := strings.TrimSpace(parts[2])
	return index, nodeLine{
		line:     lineNo,
		label:    parts[1],
		value:    value,
		hasValue: value != "",
	}, nil
}

// buildNodes checks that declared indices cover 1..N and seeds a builder in ID order.
func buildNodes(kind graph.Kind, declared map[int]nodeLine, maxIndex int) (*graph.Builder, error) {
	if maxIndex != len(declared) {
		for i := 1; i <= maxIndex; i++ {
			if _, ok := declared[i]; !ok {
				return nil, newFormatError(declared[maxIndex].line, ReasonMissingNode,
					fmt.Sprintf("index %d not declared", i))
			}
		}
	}

	b := graph.NewBuilder(kind)
	for i := 1; i <= maxIndex; i++ {
		nl := declared[i]
		b.AddNode(nl.label, nl.value, nl.hasValue)
	}
	return b, nil
}

// parseEdgeLine reads the first two tokens as 1-based endpoints.
func parseEdgeLine(lineNo int, raw string, n int) (int, int, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return 0, 0, newFormatError(lineNo, ReasonBadEdgeLine, raw)
	}

	from, err1 := strconv.Atoi(fields[0])
	to, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, newFormatError(lineNo, ReasonBadEdgeLine, raw)
	}
	if from < 1 || from > n || to < 1 || to > n {
		return 0, 0, newFormatError(lineNo, ReasonEdgeOutOfRange, raw)
	}
	return from - 1, to - 1, nil
}
