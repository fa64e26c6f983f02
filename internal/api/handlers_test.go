// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/storage"
)

// testFixture builds a catalog of "Movie 1".."Movie 8" and a corpus in which
// user 100 rates movies 1-5 exactly like queryPreferences and movie 6 at 4.0.
func testFixture(t *testing.T) (*Handler, *storage.MemoryCatalog) {
	t.Helper()

	items := make([]models.Item, 0, 8)
	for id := 1; id <= 8; id++ {
		items = append(items, models.Item{ID: id, Title: fmt.Sprintf("Movie %d", id), Year: "2000"})
	}
	catalog := storage.NewMemoryCatalog(items)

	var rows []models.Rating
	for id := 1; id <= 5; id++ {
		rows = append(rows, models.Rating{UserID: 100, ItemID: id, Rating: float64(id)})
	}
	rows = append(rows, models.Rating{UserID: 100, ItemID: 6, Rating: 4.0})
	corpus := storage.NewMemoryCorpus(rows)

	cfg := recommend.DefaultConfig()
	cfg.Cache.Enabled = false
	engine, err := recommend.NewEngine(cfg, catalog, corpus, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	return NewHandler(engine, catalog, DatasetStats{
		Movies:      catalog.Len(),
		Ratings:     corpus.Len(),
		RatingUsers: corpus.NumUsers(),
	}), catalog
}

func queryPreferences() []models.Preference {
	prefs := make([]models.Preference, 0, 5)
	for id := 1; id <= 5; id++ {
		prefs = append(prefs, models.Preference{Title: fmt.Sprintf("Movie %d", id), Rating: float64(id)})
	}
	return prefs
}

// testRouter returns the full route tree with rate limiting disabled.
func testRouter(t *testing.T) http.Handler {
	t.Helper()

	h, _ := testFixture(t)
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(h, NewChiMiddleware(cfg)).SetupChi()
}

// decodeEnvelope parses an APIResponse, decoding Data into data when non-nil.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) APIResponse {
	t.Helper()

	var raw struct {
		APIResponse
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Failed to unmarshal response %q: %v", rec.Body.String(), err)
	}
	if data != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("Failed to unmarshal data: %v", err)
		}
	}
	return raw.APIResponse
}
