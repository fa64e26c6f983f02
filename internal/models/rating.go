// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

// Rating is a single observation from the rating corpus.
// One row exists per (user, item) pair.
type Rating struct {
	// UserID identifies the corpus user who supplied the rating.
	UserID int `json:"user_id"`

	// ItemID is the catalog identifier of the rated item.
	ItemID int `json:"item_id"`

	// Rating is the score on the corpus scale (0.5-5.0 for MovieLens).
	Rating float64 `json:"rating"`
}

// Preference is a caller-supplied rating for a catalog title.
type Preference struct {
	// Title is matched case-insensitively against catalog titles.
	Title string `json:"title" validate:"required,notblank,max=500"`

	// Year optionally disambiguates titles shared by several items.
	Year string `json:"year,omitempty" validate:"omitempty,len=4,numeric"`

	// Rating is the caller's score for the title.
	Rating float64 `json:"rating" validate:"gte=0.5,lte=5"`
}
