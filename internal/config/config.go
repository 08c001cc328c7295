// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package config

import (
	"time"
)

// Config is the complete service configuration.
//
// Values are layered by LoadWithKoanf: built-in defaults, then an optional YAML
// file, then environment variables.
type Config struct {
	Graph      GraphConfig      `koanf:"graph"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Tracing    TracingConfig    `koanf:"tracing"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// GraphConfig locates the catalog graph and controls reloads.
type GraphConfig struct {
	// Path is the Pajek .net file loaded at startup.
	Path string `koanf:"path" validate:"required"`

	// Watch reloads the graph when Path changes on disk.
	Watch bool `koanf:"watch"`

	// WatchDebounce groups bursts of file events into one reload.
	WatchDebounce time.Duration `koanf:"watch_debounce"`

	// ReloadMinInterval is the minimum spacing between watcher reloads.
	ReloadMinInterval time.Duration `koanf:"reload_min_interval"`

	// ReloadFailureThreshold consecutive failed reloads open the reload breaker.
	ReloadFailureThreshold uint32 `koanf:"reload_failure_threshold" validate:"gte=1"`

	// ReloadBreakerTimeout is how long the breaker stays open.
	ReloadBreakerTimeout time.Duration `koanf:"reload_breaker_timeout"`

	// LoadRetryInterval spaces startup attempts while no graph is loaded.
	// Startup loads bypass the reload throttle and breaker.
	LoadRetryInterval time.Duration `koanf:"load_retry_interval"`
}

// RecommendConfig holds ranking and selection parameters.
type RecommendConfig struct {
	Alpha           float64       `koanf:"alpha" validate:"gte=0,lte=1"`
	Epsilon         float64       `koanf:"epsilon" validate:"gt=0"`
	MaxIterations   int           `koanf:"max_iterations" validate:"gte=0"`
	DefaultK        int           `koanf:"k" validate:"gte=1"`
	MaxK            int           `koanf:"max_k" validate:"gte=1"`
	MaxLabels       int           `koanf:"max_labels" validate:"gte=1"`
	RandomK         int           `koanf:"random_k" validate:"gte=1"`
	CategoryPrefix  string        `koanf:"category_prefix" validate:"required"`
	Seed            int64         `koanf:"seed"`
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries" validate:"gte=1"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// TracingConfig selects the OpenTelemetry span exporter.
type TracingConfig struct {
	// Exporter is "none", "stdout" or "otlp".
	Exporter     string `koanf:"exporter" validate:"oneof=none stdout otlp"`
	OTLPEndpoint string `koanf:"otlp_endpoint"`
	OTLPInsecure bool   `koanf:"otlp_insecure"`
	ServiceName  string `koanf:"service_name" validate:"required"`
}

// SupervisorConfig tunes the suture restart policy.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold" validate:"gt=0"`
	FailureDecay     float64       `koanf:"failure_decay" validate:"gt=0"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// defaultConfig returns the built-in defaults, the lowest configuration layer.
func defaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			Path:                   "./networks/movies_graph.net",
			Watch:                  false,
			WatchDebounce:          250 * time.Millisecond,
			ReloadMinInterval:      2 * time.Second,
			ReloadFailureThreshold: 3,
			ReloadBreakerTimeout:   time.Minute,
			LoadRetryInterval:      10 * time.Second,
		},
		Recommend: RecommendConfig{
			Alpha:           0.85,
			Epsilon:         1e-3,
			MaxIterations:   10000,
			DefaultK:        10,
			MaxK:            100,
			MaxLabels:       10,
			RandomK:         10,
			CategoryPrefix:  "m-",
			Seed:            42,
			CacheEnabled:    true,
			CacheTTL:        5 * time.Minute,
			CacheMaxEntries: 10000,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			Exporter:     "none",
			OTLPEndpoint: "localhost:4317",
			OTLPInsecure: true,
			ServiceName:  "filmgourmet",
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// Default returns a copy of the built-in defaults.
func Default() *Config {
	return defaultConfig()
}
