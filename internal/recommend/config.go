// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package recommend

import (
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/filmgourmet/internal/graph"
	"github.com/tomtom215/filmgourmet/internal/recommend/algorithms"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Alpha is the damping factor applied to neighbor contributions.
	// Must be in [0, 1]. Default: 0.85.
	Alpha float64 `json:"alpha"`

	// Epsilon is the L1 convergence threshold. Must be > 0. Default: 1e-3.
	Epsilon float64 `json:"epsilon"`

	// MaxIterations caps ranking iterations. 0 disables the cap. Default: 10000.
	MaxIterations int `json:"max_iterations"`

	// DefaultK is the number of labels returned when the caller does not ask.
	// Default: 10.
	DefaultK int `json:"default_k"`

	// MaxK is the largest k accepted per call. Default: 100.
	MaxK int `json:"max_k"`

	// MaxLabels bounds the number of distinct input labels. 0 means unbounded.
	// Default: 10.
	MaxLabels int `json:"max_labels"`

	// CategoryPrefix marks category labels. Default: "m-".
	CategoryPrefix string `json:"category_prefix"`

	// Seed is the random seed for RandomSample.
	// If zero, a fixed default seed is used.
	Seed int64 `json:"seed"`

	// Cache contains response caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig configures the recommendation response cache.
type CacheConfig struct {
	// Enabled enables response caching.
	Enabled bool `json:"enabled"`

	// TTL is how long cached responses remain valid.
	TTL time.Duration `json:"ttl"`

	// MaxEntries limits the cache size.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a configuration with production-ready defaults.
func DefaultConfig() *Config {
	return &Config{
		Alpha:          0.85,
		Epsilon:        1e-3,
		MaxIterations:  10000,
		DefaultK:       10,
		MaxK:           100,
		MaxLabels:      10,
		CategoryPrefix: graph.CategoryPrefix,
		Seed:           42,
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // flat list of independent checks
func (c *Config) Validate() error {
	if math.IsNaN(c.Alpha) || c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %f", c.Alpha)
	}
	if !(c.Epsilon > 0) {
		return fmt.Errorf("epsilon must be positive, got %g", c.Epsilon)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must be non-negative, got %d", c.MaxIterations)
	}
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k must be >= default_k, got %d < %d", c.MaxK, c.DefaultK)
	}
	if c.MaxLabels < 0 {
		return fmt.Errorf("max_labels must be non-negative, got %d", c.MaxLabels)
	}
	if c.CategoryPrefix == "" {
		return fmt.Errorf("category_prefix must not be empty")
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// rankOptions converts the ranking fields for the ranker.
func (c *Config) rankOptions() algorithms.RankOptions {
	return algorithms.RankOptions{
		Alpha:         c.Alpha,
		Epsilon:       c.Epsilon,
		MaxIterations: c.MaxIterations,
	}
}
