// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomtom215/filmgourmet/internal/cache"
	"github.com/tomtom215/filmgourmet/internal/graph"
	"github.com/tomtom215/filmgourmet/internal/graph/pajek"
	"github.com/tomtom215/filmgourmet/internal/metrics"
	"github.com/tomtom215/filmgourmet/internal/recommend/algorithms"
	"github.com/tomtom215/filmgourmet/internal/recommend/selection"
)

// Engine loads a catalog graph and answers recommendation queries against it.
// It is safe for concurrent use.
type Engine struct {
	// Configuration
	config *Config
	logger zerolog.Logger
	tracer trace.Tracer
	policy selection.Policy

	// Ranker, replaceable for tests
	ranker   algorithms.Ranker
	rankerMu sync.RWMutex

	// Current graph. Loads build a full snapshot and swap it in.
	current   atomic.Pointer[snapshot]
	loadMu    sync.Mutex
	version   atomic.Int64
	loadCount atomic.Int64

	// Metrics
	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64

	// Finished responses, bounded LRU with TTL
	responses *cache.LRU[*Response]

	// Random source for determinism (protected by rngMu for concurrent access)
	rng   *rand.Rand
	rngMu sync.Mutex
}

// snapshot is one loaded graph plus the label indexes derived from it.
type snapshot struct {
	graph      *graph.Store
	source     string
	loadedAt   time.Time
	version    int64
	items      []string // distinct non-category labels, sorted
	categories []string // distinct category labels, sorted
}

// NewEngine creates a new recommendation engine with no graph loaded.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Use provided seed or default for determinism
	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	return &Engine{
		config:    cfg,
		responses: cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL),
		logger:    logger.With().Str("component", "recommend").Logger(),
		tracer:    otel.Tracer("filmgourmet.recommend"),
		policy:    selection.Policy{CategoryPrefix: cfg.CategoryPrefix},
		ranker:    algorithms.NewPersonalizedPageRank(),
		rng:       rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for sampling titles
	}, nil
}

// SetRanker replaces the ranker and drops cached responses.
func (e *Engine) SetRanker(r algorithms.Ranker) {
	e.rankerMu.Lock()
	e.ranker = r
	e.rankerMu.Unlock()

	e.clearCache()
	e.logger.Info().
		Str("ranker", r.Name()).
		Msg("registered ranker")
}

func (e *Engine) getRanker() algorithms.Ranker {
	e.rankerMu.RLock()
	defer e.rankerMu.RUnlock()
	return e.ranker
}

// Load parses a Pajek graph from r and makes it current. On error the
// previously loaded graph stays in place.
func (e *Engine) Load(ctx context.Context, r io.Reader) error {
	return e.load(ctx, "reader", func() (*graph.Store, error) {
		return pajek.Parse(r)
	})
}

// LoadFile is Load for a file path.
func (e *Engine) LoadFile(ctx context.Context, path string) error {
	return e.load(ctx, path, func() (*graph.Store, error) {
		return pajek.ParseFile(path)
	})
}

// LoadGraph makes an already built graph current.
func (e *Engine) LoadGraph(ctx context.Context, g *graph.Store, source string) error {
	if g == nil {
		return errors.New("recommend: nil graph")
	}
	return e.load(ctx, source, func() (*graph.Store, error) {
		return g, nil
	})
}

func (e *Engine) load(ctx context.Context, source string, parse func() (*graph.Store, error)) error {
	_, span := e.tracer.Start(ctx, "recommend.Engine.Load",
		trace.WithAttributes(attribute.String("source", source)),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load %s: %w", source, err)
	}

	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	start := time.Now()
	g, err := parse()
	if err != nil {
		metrics.RecordGraphLoad("failure", 0, 0, 0, time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		e.logger.Warn().
			Err(err).
			Str("source", source).
			Msg("graph load failed, keeping previous graph")
		return fmt.Errorf("load %s: %w", source, err)
	}

	snap := e.newSnapshot(g, source)
	snap.version = e.version.Add(1)
	e.current.Store(snap)
	e.loadCount.Add(1)
	e.clearCache()

	duration := time.Since(start)
	metrics.RecordGraphLoad("success", g.Len(), g.EdgeCount(), snap.version, duration)
	span.SetAttributes(
		attribute.Int("node_count", g.Len()),
		attribute.Int("edge_count", g.EdgeCount()),
		attribute.Int64("version", snap.version),
	)

	e.logger.Info().
		Str("source", source).
		Str("kind", g.Kind().String()).
		Int("nodes", g.Len()).
		Int("edges", g.EdgeCount()).
		Int("items", len(snap.items)).
		Int("categories", len(snap.categories)).
		Int64("version", snap.version).
		Dur("duration", duration).
		Msg("graph loaded")

	return nil
}

func (e *Engine) newSnapshot(g *graph.Store, source string) *snapshot {
	snap := &snapshot{
		graph:    g,
		source:   source,
		loadedAt: time.Now(),
	}
	for _, label := range g.Labels() {
		if strings.HasPrefix(label, e.config.CategoryPrefix) {
			snap.categories = append(snap.categories, label)
		} else {
			snap.items = append(snap.items, label)
		}
	}
	return snap
}

func (e *Engine) loaded() (*snapshot, error) {
	snap := e.current.Load()
	if snap == nil {
		return nil, ErrNotReady
	}
	return snap, nil
}

// Find returns the lowest node ID whose label equals label exactly.
func (e *Engine) Find(label string) (int, error) {
	snap, err := e.loaded()
	if err != nil {
		return 0, err
	}
	return find(snap.graph, label)
}

func find(g *graph.Store, label string) (int, error) {
	id, ok := g.FindLabel(label)
	if !ok {
		return 0, &NotFoundError{Label: label}
	}
	return id, nil
}

// resolveLabel maps a bare category name, as listed by CategoryNames, to its
// marked graph label. A label present as written always wins.
func (e *Engine) resolveLabel(g *graph.Store, label string) string {
	if _, ok := g.FindLabel(label); ok {
		return label
	}
	marked := e.config.CategoryPrefix + label
	if _, ok := g.FindLabel(marked); ok {
		return marked
	}
	return label
}

// Recommend returns up to k item labels ranked by personalized PageRank with
// the given labels as the teleport set. The input labels and all category
// labels are never returned. A category may be given by its bare name.
func (e *Engine) Recommend(ctx context.Context, labels []string, opts ...RecommendOption) ([]string, error) {
	resp, err := e.RecommendDetailed(ctx, labels, opts...)
	if err != nil {
		return nil, err
	}
	return resp.Labels(), nil
}

// RecommendDetailed is Recommend with scores and run metadata.
func (e *Engine) RecommendDetailed(ctx context.Context, labels []string, opts ...RecommendOption) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	ctx, span := e.tracer.Start(ctx, "recommend.Engine.Recommend",
		trace.WithAttributes(attribute.Int("label_count", len(labels))),
	)
	defer span.End()

	resp, outcome, err := e.recommend(ctx, labels, opts, start)
	metrics.RecordRecommend(outcome, time.Since(start))
	if err != nil {
		e.errorCount.Add(1)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("result_count", len(resp.Items)),
		attribute.Bool("cache_hit", resp.Metadata.CacheHit),
	)
	return resp, nil
}

// recommend does the work of RecommendDetailed and reports a metrics outcome.
func (e *Engine) recommend(ctx context.Context, labels []string, opts []RecommendOption, start time.Time) (*Response, string, error) {
	snap, err := e.loaded()
	if err != nil {
		return nil, "not_ready", err
	}

	o := requestOptions{alpha: e.config.Alpha, epsilon: e.config.Epsilon, k: e.config.DefaultK}
	for _, opt := range opts {
		opt(&o)
	}
	rankOpts := e.config.rankOptions()
	rankOpts.Alpha = o.alpha
	rankOpts.Epsilon = o.epsilon
	if err := rankOpts.Validate(); err != nil {
		return nil, "invalid", err
	}
	if o.k < 0 || o.k > e.config.MaxK {
		return nil, "invalid", fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidK, o.k, e.config.MaxK)
	}

	uniq := dedupe(labels)
	if len(uniq) == 0 {
		return nil, "invalid", ErrEmptyTeleport
	}
	if e.config.MaxLabels > 0 && len(uniq) > e.config.MaxLabels {
		return nil, "invalid", fmt.Errorf("%w: %d > %d", ErrTooManyLabels, len(uniq), e.config.MaxLabels)
	}

	resolved := make([]string, len(uniq))
	for i, label := range uniq {
		resolved[i] = e.resolveLabel(snap.graph, label)
	}
	uniq = dedupe(resolved)

	teleport := make([]int, len(uniq))
	for i, label := range uniq {
		id, err := find(snap.graph, label)
		if err != nil {
			return nil, "not_found", err
		}
		teleport[i] = id
	}

	logger := e.logger.With().
		Strs("labels", uniq).
		Int("k", o.k).
		Int64("graph_version", snap.version).
		Logger()

	key := cacheKey(snap.version, uniq, o)
	if cached := e.checkCache(key); cached != nil {
		cached.Metadata.CacheHit = true
		cached.Metadata.LatencyMS = time.Since(start).Milliseconds()
		logger.Debug().Msg("returning cached recommendations")
		return cached, "cache_hit", nil
	}

	ranker := e.getRanker()
	result, err := ranker.Rank(ctx, snap.graph, teleport, rankOpts)
	if err != nil {
		return nil, "error", fmt.Errorf("rank with %s: %w", ranker.Name(), err)
	}
	metrics.RecordRank(result.Iterations, result.Converged, result.Duration)
	if !result.Converged {
		logger.Warn().
			Int("iterations", result.Iterations).
			Float64("residual", result.Residual).
			Msg("ranking stopped at iteration cap")
	}

	resp := &Response{
		Items: e.policy.Ranked(snap.graph, result.Scores, uniq, o.k),
		Metadata: ResponseMetadata{
			Labels:       uniq,
			Alpha:        o.alpha,
			Epsilon:      o.epsilon,
			K:            o.k,
			Iterations:   result.Iterations,
			Converged:    result.Converged,
			GraphVersion: snap.version,
			LatencyMS:    time.Since(start).Milliseconds(),
		},
	}
	e.storeCache(key, resp)

	logger.Debug().
		Int("iterations", result.Iterations).
		Int("returned", len(resp.Items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, "success", nil
}

// dedupe drops repeated labels, keeping first occurrences in order.
func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}

// Categories returns every distinct label of the loaded graph, sorted.
func (e *Engine) Categories() ([]string, error) {
	snap, err := e.loaded()
	if err != nil {
		return nil, err
	}
	return snap.graph.Labels(), nil
}

// CategoryNames returns category labels with the marker stripped, sorted.
// The N/A placeholder category is omitted.
func (e *Engine) CategoryNames() ([]string, error) {
	snap, err := e.loaded()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(snap.categories))
	for _, label := range snap.categories {
		name := strings.TrimPrefix(label, e.config.CategoryPrefix)
		if name == "N/A" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// RandomSample returns k distinct item labels drawn uniformly without
// replacement.
func (e *Engine) RandomSample(k int) ([]string, error) {
	snap, err := e.loaded()
	if err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, k)
	}
	if k > len(snap.items) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientItems, k, len(snap.items))
	}

	pool := make([]string, len(snap.items))
	copy(pool, snap.items)

	// Partial Fisher-Yates: the first k slots end up a uniform sample.
	e.rngMu.Lock()
	for i := 0; i < k; i++ {
		j := i + e.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	e.rngMu.Unlock()

	return pool[:k:k], nil
}

// Graph returns the current graph, or ErrNotReady.
func (e *Engine) Graph() (*graph.Store, error) {
	snap, err := e.loaded()
	if err != nil {
		return nil, err
	}
	return snap.graph, nil
}

// Status describes the loaded graph. It never fails.
func (e *Engine) Status() Status {
	snap := e.current.Load()
	if snap == nil {
		return Status{}
	}
	return Status{
		Loaded:     true,
		Kind:       snap.graph.Kind().String(),
		Nodes:      snap.graph.Len(),
		Edges:      snap.graph.EdgeCount(),
		Items:      len(snap.items),
		Categories: len(snap.categories),
		Source:     snap.source,
		LoadedAt:   snap.loadedAt,
		Version:    snap.version,
	}
}

// Ready reports whether a graph has been loaded.
func (e *Engine) Ready() bool {
	return e.current.Load() != nil
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		CacheSize:    e.cacheSize(),
		ErrorCount:   e.errorCount.Load(),
		LoadCount:    e.loadCount.Load(),
		Ranker:       e.getRanker().Name(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
