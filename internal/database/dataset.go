// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/models"
)

// Dataset is the fully parsed catalog and rating corpus.
type Dataset struct {
	Items   []models.Item
	Ratings []models.Rating
}

// LoadDataset parses both dataset files. It returns only once both are
// fully loaded, so a non-nil Dataset is always complete.
func (db *DB) LoadDataset(ctx context.Context, cfg *config.DatasetConfig) (*Dataset, error) {
	start := time.Now()
	logger := logging.WithComponent("dataset")

	items, err := db.LoadMovies(ctx, cfg.MoviesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load movie catalog: %w", err)
	}
	logger.Info().
		Str("path", cfg.MoviesPath).
		Int("items", len(items)).
		Msg("Movie catalog loaded")

	ratings, err := db.LoadRatings(ctx, cfg.RatingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rating corpus: %w", err)
	}
	logger.Info().
		Str("path", cfg.RatingsPath).
		Int("ratings", len(ratings)).
		Dur("duration", time.Since(start)).
		Msg("Rating corpus loaded")

	metrics.RecordDatasetLoad(time.Since(start), len(items), len(ratings))

	return &Dataset{Items: items, Ratings: ratings}, nil
}
