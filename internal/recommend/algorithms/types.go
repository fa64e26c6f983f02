// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"github.com/tomtom215/cinematch/internal/models"
)

// NeighborGroup holds one corpus user's ratings restricted to the items the
// query also rated, ordered by ascending item ID.
type NeighborGroup struct {
	// UserID identifies the corpus user.
	UserID int

	// Ratings are the user's co-rated observations.
	Ratings []models.Rating
}

// Overlap returns the number of co-rated items.
func (g *NeighborGroup) Overlap() int {
	return len(g.Ratings)
}

// SimilarityScore is the Pearson similarity between the query and one user.
type SimilarityScore struct {
	// UserID identifies the corpus user.
	UserID int `json:"user_id"`

	// Similarity is in [-1, 1], or exactly 0 when undefined.
	Similarity float64 `json:"similarity"`
}

// RecommendationScore is the predicted rating for one catalog item.
type RecommendationScore struct {
	// ItemID is the catalog identifier.
	ItemID int `json:"item_id"`

	// Score is the similarity-weighted average rating.
	Score float64 `json:"score"`

	// Contributors is the number of neighbors who rated the item.
	Contributors int `json:"contributors"`
}
