// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Recommender produces recommendations. *recommend.Engine implements it.
type Recommender interface {
	Recommend(ctx context.Context, prefs []models.Preference) (*recommend.Response, error)
	Config() *recommend.Config
}

// MovieCatalog is the read side of the catalog used by the movie endpoints.
// *storage.MemoryCatalog implements it.
type MovieCatalog interface {
	LookupByID(id int) (models.Item, bool)
	Search(prefix string, limit int) []models.Item
	Len() int
}

// DatasetStats describes the loaded dataset for the readiness probe.
type DatasetStats struct {
	Movies      int `json:"movies"`
	Ratings     int `json:"ratings"`
	RatingUsers int `json:"rating_users"`
}

// Handler serves all API endpoints.
type Handler struct {
	engine    Recommender
	catalog   MovieCatalog
	dataset   DatasetStats
	startTime time.Time
}

// NewHandler creates a handler over a loaded dataset.
func NewHandler(engine Recommender, catalog MovieCatalog, dataset DatasetStats) *Handler {
	return &Handler{
		engine:    engine,
		catalog:   catalog,
		dataset:   dataset,
		startTime: time.Now(),
	}
}
