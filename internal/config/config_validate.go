// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"
)

// Rate limiting bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// maxResults bounds the recommendation list length.
const maxResults = 10

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDataset validates dataset locations
func (c *Config) validateDataset() error {
	if c.Dataset.MoviesPath == "" {
		return fmt.Errorf("MOVIES_PATH is required")
	}
	if c.Dataset.RatingsPath == "" {
		return fmt.Errorf("RATINGS_PATH is required")
	}
	return nil
}

// validateRecommend validates neighbor selection settings
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MinCommonItems < 1 {
		return fmt.Errorf("RECOMMEND_MIN_COMMON_ITEMS must be at least 1")
	}
	if r.MaxPoolSize < 1 {
		return fmt.Errorf("RECOMMEND_MAX_POOL_SIZE must be at least 1")
	}
	if r.MaxNeighbors < 1 || r.MaxNeighbors > r.MaxPoolSize {
		return fmt.Errorf("RECOMMEND_MAX_NEIGHBORS must be between 1 and RECOMMEND_MAX_POOL_SIZE (%d)", r.MaxPoolSize)
	}
	if r.Results < 1 || r.Results > maxResults {
		return fmt.Errorf("RECOMMEND_RESULTS must be between 1 and %d", maxResults)
	}
	if r.MaxPreferences < 1 {
		return fmt.Errorf("RECOMMEND_MAX_PREFERENCES must be at least 1")
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("RECOMMEND_TIMEOUT must be positive")
	}
	if r.CacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must not be negative")
	}
	if r.CacheSize > 0 && r.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when caching is enabled")
	}
	return nil
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateRateLimits validates rate limiting bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
