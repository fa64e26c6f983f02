// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"strings"
)

// Item represents a catalog entry.
//
// Identity is ID. Title (plus the optional Year) is the external lookup key
// callers use when supplying preferences.
type Item struct {
	// ID is the stable catalog identifier (movieId in MovieLens data).
	ID int `json:"id"`

	// Title is the display title without the release year suffix.
	Title string `json:"title"`

	// Year is the release year as it appears in the source data.
	// Empty when unknown.
	Year string `json:"year,omitempty"`

	// Genres is a slice of genre names.
	Genres []string `json:"genres,omitempty"`
}

// DisplayTitle returns the title with the year in parentheses when known.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (i Item) DisplayTitle() string {
	if i.Year == "" {
		return i.Title
	}
	return i.Title + " (" + i.Year + ")"
}

// SplitTitleYear splits a MovieLens style title such as "Heat (1995)" into
// its title and year parts. Titles without a trailing four digit year are
// returned unchanged with an empty year.
func SplitTitleYear(raw string) (title, year string) {
	s := strings.TrimSpace(raw)
	n := len(s)
	if n < 7 || s[n-1] != ')' || s[n-6] != '(' {
		return s, ""
	}
	for _, ch := range s[n-5 : n-1] {
		if ch < '0' || ch > '9' {
			return s, ""
		}
	}
	return strings.TrimSpace(s[:n-6]), s[n-5 : n-1]
}
