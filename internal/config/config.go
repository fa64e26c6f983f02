// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	addr := cfg.Server.Addr()
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig locates the CSV files loaded at startup.
type DatasetConfig struct {
	// MoviesPath is the movie catalog CSV with movieId and title columns.
	MoviesPath string `koanf:"movies_path"`

	// RatingsPath is the rating corpus CSV with userId, movieId and rating columns.
	RatingsPath string `koanf:"ratings_path"`
}

// DatabaseConfig tunes the in-memory DuckDB instance used to parse datasets.
type DatabaseConfig struct {
	// MaxMemory is the DuckDB memory limit (e.g. "1GB").
	MaxMemory string `koanf:"max_memory"`

	// Threads is the number of DuckDB worker threads. 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// RecommendConfig holds the neighbor selection and result settings.
type RecommendConfig struct {
	// MinCommonItems is the minimum number of co-rated items a corpus user
	// needs to be considered a neighbor.
	// Default: 5
	MinCommonItems int `koanf:"min_common_items"`

	// MaxPoolSize caps the neighbor pool before similarity scoring.
	// Default: 100
	MaxPoolSize int `koanf:"max_pool_size"`

	// MaxNeighbors caps the neighbors contributing to aggregation.
	// Default: 50
	MaxNeighbors int `koanf:"max_neighbors"`

	// Results is the number of recommendations returned.
	// Default: 10
	Results int `koanf:"results"`

	// MaxPreferences bounds the preferences accepted in one request.
	// Default: 100
	MaxPreferences int `koanf:"max_preferences"`

	// ExcludeRated drops items the caller already rated from the result.
	// Default: true
	ExcludeRated bool `koanf:"exclude_rated"`

	// Timeout bounds a single recommendation request.
	// Default: 10s
	Timeout time.Duration `koanf:"timeout"`

	// CacheSize is the number of recommendation responses kept in the LRU
	// result cache. 0 disables caching.
	// Default: 0
	CacheSize int `koanf:"cache_size"`

	// CacheTTL is how long a cached response stays valid.
	// Default: 10m
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development" or "production"
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from all sources in order of precedence:
//  1. Built-in defaults
//  2. Config file (config.yaml if it exists, or the path in CONFIG_PATH)
//  3. Environment variables
//
// See LoadWithKoanf for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
