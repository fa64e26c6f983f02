// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Neighbors controls the three neighbor selection stages.
	Neighbors NeighborConfig `json:"neighbors"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`

	// ExcludeRated drops items the caller already rated from results.
	ExcludeRated bool `json:"exclude_rated"`
}

// NeighborConfig controls neighbor selection.
type NeighborConfig struct {
	// MinCommonItems is the co-rated item threshold a user must meet.
	MinCommonItems int `json:"min_common_items"`

	// MaxPoolSize caps the pool kept after ordering by overlap.
	MaxPoolSize int `json:"max_pool_size"`

	// MaxNeighbors caps the neighbors kept after ordering by similarity.
	MaxNeighbors int `json:"max_neighbors"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// Results is the number of recommendations returned, at most MaxResults.
	Results int `json:"results"`

	// MaxPreferences bounds the preferences accepted in one request.
	MaxPreferences int `json:"max_preferences"`

	// Timeout bounds a single Recommend call. Zero disables it.
	Timeout time.Duration `json:"timeout"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// Enabled turns the LRU result cache on.
	Enabled bool `json:"enabled"`

	// TTL is how long a cached response stays valid.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the LRU capacity.
	MaxEntries int `json:"max_entries"`
}

// MaxResults is the largest recommendation list an engine returns.
const MaxResults = 10

// DefaultConfig returns the configuration used by the reference MovieLens setup.
func DefaultConfig() *Config {
	return &Config{
		Neighbors: NeighborConfig{
			MinCommonItems: 5,
			MaxPoolSize:    100,
			MaxNeighbors:   50,
		},
		Limits: LimitsConfig{
			Results:        MaxResults,
			MaxPreferences: 100,
			Timeout:        10 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:    false,
			TTL:        10 * time.Minute,
			MaxEntries: 1000,
		},
		ExcludeRated: true,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Neighbors.MinCommonItems < 1 {
		return fmt.Errorf("neighbors.min_common_items must be positive, got %d", c.Neighbors.MinCommonItems)
	}
	if c.Neighbors.MaxPoolSize < 1 {
		return fmt.Errorf("neighbors.max_pool_size must be positive, got %d", c.Neighbors.MaxPoolSize)
	}
	if c.Neighbors.MaxNeighbors < 1 {
		return fmt.Errorf("neighbors.max_neighbors must be positive, got %d", c.Neighbors.MaxNeighbors)
	}
	if c.Neighbors.MaxNeighbors > c.Neighbors.MaxPoolSize {
		return fmt.Errorf("neighbors.max_neighbors must be <= neighbors.max_pool_size, got %d > %d",
			c.Neighbors.MaxNeighbors, c.Neighbors.MaxPoolSize)
	}

	if c.Limits.Results < 1 || c.Limits.Results > MaxResults {
		return fmt.Errorf("limits.results must be between 1 and %d, got %d", MaxResults, c.Limits.Results)
	}
	if c.Limits.MaxPreferences < 1 {
		return fmt.Errorf("limits.max_preferences must be positive, got %d", c.Limits.MaxPreferences)
	}
	if c.Limits.Timeout < 0 {
		return fmt.Errorf("limits.timeout must be non-negative, got %v", c.Limits.Timeout)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when caching is enabled, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive when caching is enabled, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs hold value types only
	clone := *c
	return &clone
}

// MarshalJSON renders durations as strings ("10s") instead of nanoseconds.
func (c *Config) MarshalJSON() ([]byte, error) {
	type limits struct {
		Results        int    `json:"results"`
		MaxPreferences int    `json:"max_preferences"`
		Timeout        string `json:"timeout"`
	}
	type cacheCfg struct {
		Enabled    bool   `json:"enabled"`
		TTL        string `json:"ttl"`
		MaxEntries int    `json:"max_entries"`
	}

	return json.Marshal(&struct {
		Neighbors    NeighborConfig `json:"neighbors"`
		Limits       limits         `json:"limits"`
		Cache        cacheCfg       `json:"cache"`
		ExcludeRated bool           `json:"exclude_rated"`
	}{
		Neighbors: c.Neighbors,
		Limits: limits{
			Results:        c.Limits.Results,
			MaxPreferences: c.Limits.MaxPreferences,
			Timeout:        c.Limits.Timeout.String(),
		},
		Cache: cacheCfg{
			Enabled:    c.Cache.Enabled,
			TTL:        c.Cache.TTL.String(),
			MaxEntries: c.Cache.MaxEntries,
		},
		ExcludeRated: c.ExcludeRated,
	})
}
