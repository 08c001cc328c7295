// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/filmgourmet/internal/graph"
	"github.com/tomtom215/filmgourmet/internal/graph/pajek"
)

// graphSummary is what validate prints for a well-formed file.
type graphSummary struct {
	Path       string `json:"path"`
	Kind       string `json:"kind"`
	Nodes      int    `json:"nodes"`
	Edges      int    `json:"edges"`
	Items      int    `json:"items"`
	Categories int    `json:"categories"`
}

// summarize counts distinct labels, so its item and category numbers match
// the engine's graph status for the same file.
func summarize(path string, g *graph.Store, categoryPrefix string) graphSummary {
	if categoryPrefix == "" {
		categoryPrefix = graph.CategoryPrefix
	}
	s := graphSummary{
		Path:  path,
		Kind:  g.Kind().String(),
		Nodes: g.Len(),
		Edges: g.EdgeCount(),
	}
	for _, label := range g.Labels() {
		if strings.HasPrefix(label, categoryPrefix) {
			s.Categories++
		} else {
			s.Items++
		}
	}
	return s
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Parse a Pajek graph file and print its shape",
		Long: `Parse a graph file without loading it into an engine. A malformed file
fails with the offending line number. FILE defaults to graph.path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			path := cfg.Graph.Path
			if len(args) == 1 {
				path = args[0]
			}

			g, err := pajek.ParseFile(path)
			if err != nil {
				return err
			}

			s := summarize(path, g, cfg.Recommend.CategoryPrefix)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"%s: %s graph, %d nodes, %d edges, %d items, %d categories\n",
				s.Path, s.Kind, s.Nodes, s.Edges, s.Items, s.Categories)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}
