// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package models defines the data structures shared across CineMatch.

This package contains the reference data the recommendation engine reads
(catalog items and corpus ratings) and the query input callers supply
(preferences). It has no dependencies on other internal packages so that
the storage layer, the recommendation engine and the HTTP layer can all
import it without cycles.

Key Components:

  - Item: A catalog entry (movie) identified by a stable integer ID
  - Rating: A single (user, item, rating) observation from the corpus
  - Preference: A caller-supplied (title, rating) pair resolved against the catalog

Lifetime:

Items and Ratings are loaded once at process start and never mutated.
Preferences live for a single recommendation request.

Usage Example:

	prefs := []models.Preference{
	    {Title: "Toy Story", Rating: 5},
	    {Title: "Heat", Year: "1995", Rating: 4},
	}
	resp, err := engine.Recommend(ctx, prefs)
*/
package models
