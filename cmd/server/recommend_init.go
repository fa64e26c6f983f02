// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/database"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/storage"
)

// RecommendComponents holds all recommendation-related components.
type RecommendComponents struct {
	Engine  *recommend.Engine
	Catalog *storage.MemoryCatalog
	Corpus  *storage.MemoryCorpus
}

// Stats summarizes the loaded dataset for the readiness probe.
func (c *RecommendComponents) Stats() api.DatasetStats {
	return api.DatasetStats{
		Movies:      c.Catalog.Len(),
		Ratings:     c.Corpus.Len(),
		RatingUsers: c.Corpus.NumUsers(),
	}
}

// initRecommend loads the dataset through DuckDB and builds the engine over
// the in-memory catalog and corpus.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(ctx context.Context, cfg *config.Config, db *database.DB, logger zerolog.Logger) (*RecommendComponents, error) {
	ds, err := db.LoadDataset(ctx, &cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	catalog := storage.NewMemoryCatalog(ds.Items)
	corpus := storage.NewMemoryCorpus(ds.Ratings)

	logger.Info().
		Int("movies", catalog.Len()).
		Int("ratings", corpus.Len()).
		Int("users", corpus.NumUsers()).
		Int("rated_items", corpus.NumItems()).
		Msg("dataset indexed")

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), catalog, corpus, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	return &RecommendComponents{Engine: engine, Catalog: catalog, Corpus: corpus}, nil
}

// buildEngineConfig maps application config to engine config. A zero
// CacheSize disables the result cache.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	rc := cfg.Recommend
	return &recommend.Config{
		Neighbors: recommend.NeighborConfig{
			MinCommonItems: rc.MinCommonItems,
			MaxPoolSize:    rc.MaxPoolSize,
			MaxNeighbors:   rc.MaxNeighbors,
		},
		Limits: recommend.LimitsConfig{
			Results:        rc.Results,
			MaxPreferences: rc.MaxPreferences,
			Timeout:        rc.Timeout,
		},
		Cache: recommend.CacheConfig{
			Enabled:    rc.CacheSize > 0,
			TTL:        rc.CacheTTL,
			MaxEntries: rc.CacheSize,
		},
		ExcludeRated: rc.ExcludeRated,
	}
}
