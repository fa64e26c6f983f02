// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/cinematch/internal/models"
)

// maxRequestBodyBytes bounds request bodies on POST endpoints.
const maxRequestBodyBytes = 1 << 20

// RecommendRequest is the body of POST /api/v1/recommendations.
type RecommendRequest struct {
	Preferences []models.Preference `json:"preferences" validate:"required,min=1,max=100,dive"`
}

// MovieSearchRequest holds the query parameters of GET /api/v1/movies/search.
type MovieSearchRequest struct {
	Query string `json:"q" validate:"required,notblank,max=200"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
}

// defaultSearchLimit applies when ?limit is absent.
const defaultSearchLimit = 10

// parseMovieSearchRequest reads q and limit from the query string.
func parseMovieSearchRequest(r *http.Request) (MovieSearchRequest, error) {
	q := r.URL.Query()
	req := MovieSearchRequest{
		Query: q.Get("q"),
		Limit: defaultSearchLimit,
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("limit must be an integer, got %q", raw)
		}
		req.Limit = limit
	}
	return req, nil
}

// parsePreferenceForm reads movies[] and ratings[] form fields as pairs.
// Pairs are matched by position; surplus entries in the longer list are
// ignored.
func parsePreferenceForm(r *http.Request) ([]models.Preference, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form body: %w", err)
	}

	movies := r.PostForm["movies[]"]
	ratings := r.PostForm["ratings[]"]
	n := min(len(movies), len(ratings))

	prefs := make([]models.Preference, 0, n)
	for i := 0; i < n; i++ {
		rating, err := strconv.ParseFloat(strings.TrimSpace(ratings[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("ratings[%d] is not a number: %q", i, ratings[i])
		}
		prefs = append(prefs, models.Preference{Title: movies[i], Rating: rating})
	}
	return prefs, nil
}
