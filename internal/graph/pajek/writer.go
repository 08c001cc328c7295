// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package pajek

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/filmgourmet/internal/graph"
)

// ErrUnwritableLabel is returned by Write for labels that Parse could not read back.
var ErrUnwritableLabel = errors.New("pajek: label or value contains a quote or newline")

// Write serializes g in the format Parse reads. Edges are written in insertion
// order, so Parse(Write(g)) reproduces the node list, kind and edge multiset.
func Write(w io.Writer, g *graph.Store) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "*Vertices %d\n", g.Len()); err != nil {
		return err
	}

	for _, n := range g.Nodes() {
		if strings.ContainsAny(n.Label, "\"\r\n") || strings.ContainsAny(n.Value, "\"\r\n") {
			return fmt.Errorf("node %d: %w", n.ID+1, ErrUnwritableLabel)
		}
		var err error
		if n.HasValue && n.Value != "" {
			_, err = fmt.Fprintf(bw, "%d \"%s\" %s\n", n.ID+1, n.Label, n.Value)
		} else {
			_, err = fmt.Fprintf(bw, "%d \"%s\"\n", n.ID+1, n.Label)
		}
		if err != nil {
			return err
		}
	}

	directive := "*Edges"
	if g.Kind().Directed() {
		directive = "*Arcs"
	}
	if _, err := fmt.Fprintln(bw, directive); err != nil {
		return err
	}

	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.From+1, e.To+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
