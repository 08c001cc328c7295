// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/filmgourmet/internal/recommend"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		k       int
		alpha   float64
		eps     float64
		verbose bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "recommend LABEL [LABEL...]",
		Short: "Recommend movies for one or more labels",
		Long: `Rank the graph with the given labels as the teleport set and print the
top movies, best first. Labels may name movies or m- categories; input
labels never appear in the output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, err := opts.prepare(cmd)
			if err != nil {
				return err
			}

			var ropts []recommend.RecommendOption
			flags := cmd.Flags()
			if flags.Changed("k") {
				ropts = append(ropts, recommend.WithK(k))
			}
			if flags.Changed("alpha") {
				ropts = append(ropts, recommend.WithAlpha(alpha))
			}
			if flags.Changed("eps") {
				ropts = append(ropts, recommend.WithEpsilon(eps))
			}

			resp, err := engine.RecommendDetailed(cmd.Context(), args, ropts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(out, resp)
			case verbose:
				return writeScored(out, resp)
			default:
				return writeLines(out, resp.Labels())
			}
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of recommendations (default recommend.k)")
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "damping factor in [0, 1] (default recommend.alpha)")
	cmd.Flags().Float64Var(&eps, "eps", 0, "convergence threshold (default recommend.epsilon)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print scores and degrees")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full response as JSON")
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the distinct labels of the graph",
		Long: `List every distinct label of the graph, sorted. With --names only the
category names are printed, without the m- marker and without N/A.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, engine, err := opts.prepare(cmd)
			if err != nil {
				return err
			}

			list := engine.Categories
			if names {
				list = engine.CategoryNames
			}
			labels, err := list()
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), labels)
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "print category names only")
	return cmd
}

func newRandomCmd(opts *rootOptions) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a uniform random sample of movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, engine, err := opts.prepare(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("k") {
				k = cfg.Recommend.RandomK
			}

			labels, err := engine.RandomSample(k)
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), labels)
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "sample size (default recommend.random_k)")
	return cmd
}

func newFindCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find LABEL",
		Short: "Print the node identifier of a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, err := opts.prepare(cmd)
			if err != nil {
				return err
			}

			id, err := engine.Find(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeScored(w io.Writer, resp *recommend.Response) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tLABEL\tSCORE\tDEGREE")
	for i, item := range resp.Items {
		fmt.Fprintf(tw, "%d\t%s\t%.6g\t%d\n", i+1, item.Label, item.Score, item.Degree)
	}
	m := resp.Metadata
	fmt.Fprintf(tw, "\niterations=%d converged=%t alpha=%g eps=%g\n", m.Iterations, m.Converged, m.Alpha, m.Epsilon)
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
