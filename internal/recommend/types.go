// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
)

// ErrTooManyPreferences is returned when a request exceeds Limits.MaxPreferences.
var ErrTooManyPreferences = errors.New("too many preferences")

// Catalog resolves titles and IDs to catalog items.
// It is typically implemented by storage.MemoryCatalog.
type Catalog interface {
	// Lookup resolves a title, optionally suffixed with " (YYYY)".
	Lookup(title string) (models.Item, bool)

	// LookupByID returns the item with the given ID.
	LookupByID(id int) (models.Item, bool)
}

// Corpus provides indexed access to the rating corpus.
// It is typically implemented by storage.MemoryCorpus.
type Corpus interface {
	// RatingsForItems returns every rating of the given items in corpus order.
	RatingsForItems(items map[int]struct{}) []models.Rating

	// RatingsForUsers returns every rating by the given users in corpus order.
	RatingsForUsers(users map[int]struct{}) []models.Rating
}

// ScoredItem is a recommended catalog item with its predicted rating.
type ScoredItem struct {
	models.Item

	// Score is the similarity-weighted average rating of the neighbors.
	Score float64 `json:"score"`

	// Contributors is the number of neighbors who rated the item.
	Contributors int `json:"contributors"`
}

// Response contains recommendations and metadata.
type Response struct {
	// Items are ordered by descending score, ties by ascending item ID.
	Items []ScoredItem `json:"items"`

	// Metadata describes how the response was produced.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes one pass through the pipeline.
type ResponseMetadata struct {
	// RequestID is the unique identifier for this request.
	RequestID string `json:"request_id"`

	// Resolved is the number of distinct items the preferences resolved to.
	Resolved int `json:"resolved"`

	// Unresolved lists preference titles with no catalog match.
	Unresolved []string `json:"unresolved,omitempty"`

	// CandidateUsers is the number of corpus users sharing any item.
	CandidateUsers int `json:"candidate_users"`

	// Qualified is the number of users meeting the overlap threshold.
	Qualified int `json:"qualified"`

	// Pool is the number of users kept after the overlap cap.
	Pool int `json:"pool"`

	// Neighbors is the number of users contributing to scores.
	Neighbors int `json:"neighbors"`

	// ScoredItems is the number of items with a defined prediction.
	ScoredItems int `json:"scored_items"`

	// LatencyMS is the total processing time in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// CacheHit indicates if the response was served from cache.
	CacheHit bool `json:"cache_hit"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// Stats contains engine request counters.
type Stats struct {
	Requests    int64 `json:"requests"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	Errors      int64 `json:"errors"`
}
