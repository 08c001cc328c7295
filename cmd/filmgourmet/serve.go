// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/filmgourmet/internal/api"
	"github.com/tomtom215/filmgourmet/internal/config"
	"github.com/tomtom215/filmgourmet/internal/logging"
	"github.com/tomtom215/filmgourmet/internal/recommend"
	"github.com/tomtom215/filmgourmet/internal/supervisor"
	"github.com/tomtom215/filmgourmet/internal/supervisor/services"
	"github.com/tomtom215/filmgourmet/internal/telemetry"
	"github.com/tomtom215/filmgourmet/internal/watcher"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		host  string
		port  int
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP recommendation server",
		Long: `Serve the recommendation API. The graph is loaded in the background, so
the server answers GRAPH_NOT_LOADED until the first load succeeds. With
--watch the graph is reloaded whenever the file changes on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Server.Host = host
			}
			if flags.Changed("port") {
				cfg.Server.Port = port
			}
			if flags.Changed("watch") {
				cfg.Graph.Watch = watch
			}

			initLogging(cfg, cmd.ErrOrStderr())
			if opts.configPath != "" {
				if err := watchLogging(opts.configPath, cmd.ErrOrStderr()); err != nil {
					logging.Warn().Err(err).Msg("config file watch unavailable")
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (default server.host)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default server.port)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the graph when the file changes")
	return cmd
}

// watchLogging re-reads path whenever it changes and applies its logging
// section. Every other setting needs a restart.
func watchLogging(path string, out io.Writer) error {
	return config.WatchConfigFile(path, func() {
		cfg, err := config.LoadFile(path)
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("config reload failed, keeping current logging settings")
			return
		}
		initLogging(cfg, out)
		logging.Info().
			Str("path", path).
			Str("level", cfg.Logging.Level).
			Msg("config file changed, logging settings applied")
	})
}

// app is the object graph serve runs under the supervisor tree.
type app struct {
	engine  *recommend.Engine
	watcher *watcher.GraphWatcher
	server  *http.Server
	tree    *supervisor.SupervisorTree
}

// buildApp wires engine, watcher, API and supervisor from cfg. Nothing is
// started and no file is read.
func buildApp(cfg *config.Config) (*app, error) {
	logger := logging.Logger()

	engine, err := recommend.NewEngine(engineConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	w, err := watcher.New(cfg.Graph.Path, engine, watcher.Options{
		Debounce:         cfg.Graph.WatchDebounce,
		MinInterval:      cfg.Graph.ReloadMinInterval,
		FailureThreshold: cfg.Graph.ReloadFailureThreshold,
		BreakerTimeout:   cfg.Graph.ReloadBreakerTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create graph watcher: %w", err)
	}

	handler := api.NewHandler(engine, w, api.HandlerConfig{
		RequestTimeout: cfg.Server.RequestTimeout,
		RandomK:        cfg.Recommend.RandomK,
		Version:        version,
	})

	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           api.NewRouter(handler, mw).SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       2 * cfg.Server.WriteTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureDecay:     cfg.Supervisor.FailureDecay,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddGraphService(services.NewGraphService(engine, w, engine, services.GraphServiceConfig{
		Path:          w.Path(),
		RetryInterval: cfg.Graph.LoadRetryInterval,
		Watch:         cfg.Graph.Watch,
	}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logger))

	return &app{engine: engine, watcher: w, server: server, tree: tree}, nil
}

// serve runs the server until ctx is canceled.
func serve(ctx context.Context, cfg *config.Config) error {
	tracingShutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: version,
		Exporter:       cfg.Tracing.Exporter,
		OTLPEndpoint:   cfg.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Tracing.OTLPInsecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracingShutdown(flushCtx); err != nil {
			logging.Warn().Err(err).Msg("tracer shutdown failed")
		}
	}()

	a, err := buildApp(cfg)
	if err != nil {
		return err
	}

	logging.Info().
		Str("version", version).
		Str("addr", a.server.Addr).
		Str("graph", cfg.Graph.Path).
		Bool("watch", cfg.Graph.Watch).
		Str("tracing", cfg.Tracing.Exporter).
		Msg("starting filmgourmet")

	errCh := a.tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("shutdown signal received")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("supervisor tree stopped with error")
	}

	report, err := a.tree.UnstoppedServiceReport()
	if err != nil {
		logging.Warn().Err(err).Msg("could not collect unstopped services")
	}
	for _, svc := range report {
		logging.Warn().Str("service", svc.Name).Msg("service did not stop in time")
	}

	logging.Info().Msg("filmgourmet stopped")
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return serveErr
	}
	return nil
}
