// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/filmgourmet/internal/metrics"
)

// BreakerName labels the reload circuit breaker in metrics.
const BreakerName = "graph-reload"

// Loader reloads the graph from a file. *recommend.Engine satisfies it.
type Loader interface {
	LoadFile(ctx context.Context, path string) error
}

// Options tunes reload behavior.
type Options struct {
	// Debounce groups bursts of file events into one reload.
	Debounce time.Duration

	// MinInterval is the minimum spacing between reloads. 0 disables throttling.
	MinInterval time.Duration

	// FailureThreshold consecutive failed reloads open the breaker.
	FailureThreshold uint32

	// BreakerTimeout is how long the breaker stays open before a trial reload.
	BreakerTimeout time.Duration
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Debounce:         250 * time.Millisecond,
		MinInterval:      2 * time.Second,
		FailureThreshold: 3,
		BreakerTimeout:   time.Minute,
	}
}

// GraphWatcher reloads a graph file whenever it changes on disk.
//
// It watches the file's directory rather than the file so editors that save by
// writing a temp file and renaming it over the original are still seen.
// Reloads are debounced, throttled by a token bucket and guarded by a circuit
// breaker: a file that keeps failing to parse stops being retried until the
// breaker timeout passes. A failed reload never replaces the loaded graph.
type GraphWatcher struct {
	path    string
	loader  Loader
	opts    Options
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[struct{}]
	logger  zerolog.Logger

	reloads  atomic.Int64
	failures atomic.Int64
	rejected atomic.Int64
}

// New creates a watcher for path. Call Run to start watching.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(path string, loader Loader, opts Options, logger zerolog.Logger) (*GraphWatcher, error) {
	if path == "" {
		return nil, errors.New("watcher: empty path")
	}
	if loader == nil {
		return nil, errors.New("watcher: nil loader")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watcher: resolve %s: %w", path, err)
	}
	if opts.FailureThreshold == 0 {
		opts.FailureThreshold = DefaultOptions().FailureThreshold
	}
	if opts.BreakerTimeout <= 0 {
		opts.BreakerTimeout = DefaultOptions().BreakerTimeout
	}

	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}

	w := &GraphWatcher{
		path:    abs,
		loader:  loader,
		opts:    opts,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With().Str("component", "watcher").Str("path", abs).Logger(),
	}

	metrics.SetCircuitBreakerState(BreakerName, 0)
	w.cb = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 1,
		Timeout:     opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			w.logger.Info().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("reload breaker state change")
			metrics.SetCircuitBreakerState(name, stateToInt(to))
		},
	})

	return w, nil
}

// Path returns the absolute path being watched.
func (w *GraphWatcher) Path() string {
	return w.path
}

// Run watches until ctx is canceled. Reload failures are logged and counted;
// only watcher setup errors are returned.
func (w *GraphWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: create: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watcher: watch %s: %w", filepath.Dir(w.path), err)
	}

	w.logger.Info().Dur("debounce", w.opts.Debounce).Msg("watching graph file")

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("graph file changed")
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.opts.Debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if err := w.Reload(ctx); err != nil && ctx.Err() == nil {
				w.logger.Warn().Err(err).Msg("graph reload failed")
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// relevant reports whether event means the graph file has new content.
func (w *GraphWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Reload loads the file once, subject to the throttle and the breaker.
func (w *GraphWatcher) Reload(ctx context.Context) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("watcher: throttle: %w", err)
	}

	_, err := w.cb.Execute(func() (struct{}, error) {
		return struct{}{}, w.loader.LoadFile(ctx, w.path)
	})

	switch {
	case err == nil:
		w.reloads.Add(1)
		metrics.RecordWatcherReload("success")
		w.logger.Info().Msg("graph reloaded")
		return nil
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		w.rejected.Add(1)
		metrics.RecordWatcherReload("rejected")
		return fmt.Errorf("watcher: reload skipped: %w", err)
	default:
		w.failures.Add(1)
		metrics.RecordWatcherReload("failure")
		return err
	}
}

// Stats reports reload counters.
type Stats struct {
	Reloads  int64  `json:"reloads"`
	Failures int64  `json:"failures"`
	Rejected int64  `json:"rejected"`
	Breaker  string `json:"breaker"`
}

// Stats returns reload counters and the breaker state.
func (w *GraphWatcher) Stats() Stats {
	return Stats{
		Reloads:  w.reloads.Load(),
		Failures: w.failures.Load(),
		Rejected: w.rejected.Load(),
		Breaker:  w.cb.State().String(),
	}
}

func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
