// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/filmgourmet/internal/config"
	"github.com/tomtom215/filmgourmet/internal/logging"
	"github.com/tomtom215/filmgourmet/internal/recommend"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	graphPath  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "filmgourmet",
		Short: "Graph-based movie recommendations",
		Long: `filmgourmet recommends movies by running personalized PageRank over a
catalog graph in Pajek format, where movies link to the m- category nodes
they belong to.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default $CONFIG_PATH, ./config.yaml or /etc/filmgourmet/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.graphPath, "graph", "",
		"Pajek graph file, overrides graph.path")

	cmd.AddCommand(
		newServeCmd(opts),
		newRecommendCmd(opts),
		newCategoriesCmd(opts),
		newRandomCmd(opts),
		newFindCmd(opts),
		newValidateCmd(opts),
	)
	return cmd
}

// loadConfig resolves the layered configuration and applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.LoadWithKoanf()
	}
	if err != nil {
		return nil, err
	}
	if o.graphPath != "" {
		cfg.Graph.Path = o.graphPath
	}
	return cfg, nil
}

// initLogging points the global logger at w using the configured level and format.
func initLogging(cfg *config.Config, w io.Writer) {
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    w,
	})
}

// engineConfig maps the recommend section onto the engine's own config.
func engineConfig(cfg *config.Config) *recommend.Config {
	rc := cfg.Recommend
	return &recommend.Config{
		Alpha:          rc.Alpha,
		Epsilon:        rc.Epsilon,
		MaxIterations:  rc.MaxIterations,
		DefaultK:       rc.DefaultK,
		MaxK:           rc.MaxK,
		MaxLabels:      rc.MaxLabels,
		CategoryPrefix: rc.CategoryPrefix,
		Seed:           rc.Seed,
		Cache: recommend.CacheConfig{
			Enabled:    rc.CacheEnabled,
			TTL:        rc.CacheTTL,
			MaxEntries: rc.CacheMaxEntries,
		},
	}
}

// openEngine builds an engine and loads cfg.Graph.Path into it. It backs the
// one-shot subcommands; serve loads through the graph service instead.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func openEngine(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	engine, err := recommend.NewEngine(engineConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	if err := engine.LoadFile(ctx, cfg.Graph.Path); err != nil {
		return nil, err
	}
	return engine, nil
}

// prepare is the common prologue of the one-shot subcommands.
func (o *rootOptions) prepare(cmd *cobra.Command) (*config.Config, *recommend.Engine, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	initLogging(cfg, cmd.ErrOrStderr())

	engine, err := openEngine(cmd.Context(), cfg, logging.Logger())
	if err != nil {
		return nil, nil, err
	}
	return cfg, engine, nil
}
