// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// GraphLoader loads the graph file. *recommend.Engine satisfies it.
//
// The initial load calls it directly rather than going through the watcher,
// so startup retries run every RetryInterval and are never held back by the
// reload breaker.
type GraphLoader interface {
	LoadFile(ctx context.Context, path string) error
}

// GraphWatcher watches the graph file until ctx is canceled.
type GraphWatcher interface {
	Run(ctx context.Context) error
}

// ReadyChecker reports whether a graph is loaded. *recommend.Engine satisfies it.
type ReadyChecker interface {
	Ready() bool
}

// GraphServiceConfig holds configuration for the graph service.
type GraphServiceConfig struct {
	// Path is the graph file to load.
	Path string

	// RetryInterval is how long to wait between failed initial loads.
	RetryInterval time.Duration

	// Watch enables reloading when the file changes.
	Watch bool
}

// GraphService loads the graph when the server starts and, if configured,
// keeps it fresh by watching the file.
//
// Until the first load succeeds the API answers GRAPH_NOT_LOADED, so a bad or
// missing file at startup degrades the server instead of stopping it.
type GraphService struct {
	loader  GraphLoader
	watcher GraphWatcher
	ready   ReadyChecker
	config  GraphServiceConfig
	logger  zerolog.Logger
	name    string
}

// NewGraphService creates a new graph service. watcher is only used when
// cfg.Watch is set.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGraphService(loader GraphLoader, watcher GraphWatcher, ready ReadyChecker, cfg GraphServiceConfig, logger zerolog.Logger) *GraphService {
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 10 * time.Second
	}
	return &GraphService{
		loader:  loader,
		watcher: watcher,
		ready:   ready,
		config:  cfg,
		logger:  logger.With().Str("service", "graph").Logger(),
		name:    "graph-service",
	}
}

// Serve implements suture.Service.
func (s *GraphService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("path", s.config.Path).
		Bool("watch", s.config.Watch).
		Dur("retry_interval", s.config.RetryInterval).
		Msg("graph service starting")

	if !s.ready.Ready() {
		if err := s.loadUntilReady(ctx); err != nil {
			return err
		}
	}

	if !s.config.Watch || s.watcher == nil {
		<-ctx.Done()
		s.logger.Info().Msg("graph service shutting down")
		return ctx.Err()
	}

	// Run only returns an error when the watch cannot be set up; the
	// supervisor restarts us with backoff.
	if err := s.watcher.Run(ctx); err != nil {
		return fmt.Errorf("graph watcher: %w", err)
	}
	s.logger.Info().Msg("graph service shutting down")
	return ctx.Err()
}

// loadUntilReady retries the initial load until it succeeds or ctx ends.
func (s *GraphService) loadUntilReady(ctx context.Context) error {
	ticker := time.NewTicker(s.config.RetryInterval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		start := time.Now()
		err := s.loader.LoadFile(ctx, s.config.Path)
		if err == nil {
			s.logger.Info().
				Int("attempt", attempt).
				Dur("duration", time.Since(start)).
				Msg("initial graph load complete")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn().Err(err).Int("attempt", attempt).Msg("initial graph load failed (will retry)")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// String returns the service name for logging.
func (s *GraphService) String() string {
	return s.name
}
