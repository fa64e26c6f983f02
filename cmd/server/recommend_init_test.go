// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"testing"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
)

func TestBuildEngineConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cacheSize   int
		wantEnabled bool
	}{
		{name: "cache enabled", cacheSize: 500, wantEnabled: true},
		{name: "zero size disables cache", cacheSize: 0, wantEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Recommend: config.RecommendConfig{
				MinCommonItems: 3,
				MaxPoolSize:    40,
				MaxNeighbors:   20,
				Results:        7,
				MaxPreferences: 25,
				ExcludeRated:   true,
				Timeout:        2 * time.Second,
				CacheSize:      tt.cacheSize,
				CacheTTL:       time.Minute,
			}}

			got := buildEngineConfig(cfg)

			if got.Neighbors.MinCommonItems != 3 || got.Neighbors.MaxPoolSize != 40 || got.Neighbors.MaxNeighbors != 20 {
				t.Errorf("Neighbors = %+v", got.Neighbors)
			}
			if got.Limits.Results != 7 || got.Limits.MaxPreferences != 25 || got.Limits.Timeout != 2*time.Second {
				t.Errorf("Limits = %+v", got.Limits)
			}
			if got.Cache.Enabled != tt.wantEnabled {
				t.Errorf("Cache.Enabled = %v, want %v", got.Cache.Enabled, tt.wantEnabled)
			}
			if !got.ExcludeRated {
				t.Error("ExcludeRated = false, want true")
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}
