// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/cinematch/internal/models"
)

func TestMovie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantTitle  string
	}{
		{name: "known id", path: "/api/v1/movies/3", wantStatus: http.StatusOK, wantTitle: "Movie 3"},
		{name: "unknown id", path: "/api/v1/movies/999", wantStatus: http.StatusNotFound},
		{name: "non numeric id", path: "/api/v1/movies/abc", wantStatus: http.StatusBadRequest},
	}

	router := testRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantTitle == "" {
				return
			}
			var item models.Item
			decodeEnvelope(t, rec, &item)
			if item.Title != tt.wantTitle || item.Year != "2000" {
				t.Errorf("item = %+v, want %s (2000)", item, tt.wantTitle)
			}
		})
	}
}

func TestSearchMovies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []int
	}{
		{name: "prefix match", query: "?q=movie&limit=3", wantStatus: http.StatusOK, wantIDs: []int{1, 2, 3}},
		{name: "case insensitive", query: "?q=MOVIE%207", wantStatus: http.StatusOK, wantIDs: []int{7}},
		{name: "no match", query: "?q=zzz", wantStatus: http.StatusOK, wantIDs: []int{}},
		{name: "default limit", query: "?q=m", wantStatus: http.StatusOK, wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "missing query", query: "", wantStatus: http.StatusBadRequest},
		{name: "limit too large", query: "?q=m&limit=500", wantStatus: http.StatusBadRequest},
		{name: "limit not a number", query: "?q=m&limit=ten", wantStatus: http.StatusBadRequest},
	}

	router := testRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/search"+tt.query, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantIDs == nil {
				return
			}

			var items []models.Item
			env := decodeEnvelope(t, rec, &items)
			if len(items) != len(tt.wantIDs) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if items[i].ID != id {
					t.Errorf("items[%d].ID = %d, want %d", i, items[i].ID, id)
				}
			}
			if env.Meta == nil || env.Meta.Count == nil || *env.Meta.Count != len(tt.wantIDs) {
				t.Errorf("meta.count = %v, want %d", env.Meta, len(tt.wantIDs))
			}
		})
	}
}
