// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/filmgourmet/internal/validation"
)

// Validate runs the struct tag rules, then the cross-field checks that tags
// cannot express.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateDurations(); err != nil {
		return err
	}
	return c.validateTracing()
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxK < r.DefaultK {
		return fmt.Errorf("recommend.max_k must be >= recommend.k, got %d < %d", r.MaxK, r.DefaultK)
	}
	if r.CacheEnabled && r.CacheTTL <= 0 {
		return fmt.Errorf("recommend.cache_ttl must be positive when caching is enabled, got %v", r.CacheTTL)
	}
	return nil
}

func (c *Config) validateDurations() error {
	positive := []struct {
		name  string
		value time.Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.request_timeout", c.Server.RequestTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"supervisor.shutdown_timeout", c.Supervisor.ShutdownTimeout},
		{"graph.reload_breaker_timeout", c.Graph.ReloadBreakerTimeout},
		{"graph.load_retry_interval", c.Graph.LoadRetryInterval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}

	if c.Graph.WatchDebounce < 0 {
		return fmt.Errorf("graph.watch_debounce must not be negative, got %v", c.Graph.WatchDebounce)
	}
	if c.Graph.ReloadMinInterval < 0 {
		return fmt.Errorf("graph.reload_min_interval must not be negative, got %v", c.Graph.ReloadMinInterval)
	}
	if !c.Security.RateLimitDisabled && c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive when rate limiting is enabled, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateTracing() error {
	if c.Tracing.Exporter == "otlp" && c.Tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when tracing.exporter is otlp")
	}
	return nil
}
