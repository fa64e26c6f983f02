// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

func postJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRecommend_SingleIdenticalNeighbor(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	rec := postJSON(t, router, "/api/v1/recommendations", RecommendRequest{Preferences: queryPreferences()})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	env := decodeEnvelope(t, rec, &resp)
	if !env.Success {
		t.Fatal("Success = false")
	}
	if len(resp.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(resp.Items))
	}
	if resp.Items[0].ID != 6 || resp.Items[0].Score != 4.0 {
		t.Errorf("Items[0] = {ID:%d Score:%v}, want {ID:6 Score:4}", resp.Items[0].ID, resp.Items[0].Score)
	}
	if resp.Items[0].Title != "Movie 6" {
		t.Errorf("Items[0].Title = %q, want Movie 6", resp.Items[0].Title)
	}
	if resp.Metadata.Neighbors != 1 {
		t.Errorf("Metadata.Neighbors = %d, want 1", resp.Metadata.Neighbors)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestRecommend_NoMatchesIsEmptySuccess(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	body := RecommendRequest{Preferences: []models.Preference{
		{Title: "Nonexistent Film", Rating: 4},
		{Title: "Another Missing Film", Rating: 2},
	}}
	rec := postJSON(t, router, "/api/v1/recommendations", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp recommend.Response
	decodeEnvelope(t, rec, &resp)
	if len(resp.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(resp.Items))
	}
	if len(resp.Metadata.Unresolved) != 2 {
		t.Errorf("Unresolved = %v, want 2 titles", resp.Metadata.Unresolved)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Errorf("body should carry an empty items array: %s", rec.Body.String())
	}
}

func TestRecommend_BadRequests(t *testing.T) {
	t.Parallel()

	tooMany := make([]models.Preference, 101)
	for i := range tooMany {
		tooMany[i] = models.Preference{Title: "Movie 1", Rating: 3}
	}
	tooManyBody, _ := json.Marshal(RecommendRequest{Preferences: tooMany})

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "malformed json", body: `{"preferences":`, wantCode: ErrCodeBadRequest},
		{name: "unknown field", body: `{"prefs":[]}`, wantCode: ErrCodeBadRequest},
		{name: "empty body object", body: `{}`, wantCode: ErrCodeValidationFailed},
		{name: "empty list", body: `{"preferences":[]}`, wantCode: ErrCodeValidationFailed},
		{name: "rating out of range", body: `{"preferences":[{"title":"Movie 1","rating":7}]}`, wantCode: ErrCodeValidationFailed},
		{name: "blank title", body: `{"preferences":[{"title":"  ","rating":3}]}`, wantCode: ErrCodeValidationFailed},
		{name: "too many preferences", body: string(tooManyBody), wantCode: ErrCodeValidationFailed},
	}

	router := testRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}
			env := decodeEnvelope(t, rec, nil)
			if env.Success || env.Error == nil {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestRecommendForm(t *testing.T) {
	t.Parallel()

	router := testRouter(t)

	form := url.Values{}
	for _, p := range queryPreferences() {
		form.Add("movies[]", p.Title)
	}
	for _, r := range []string{"1", "2", "3", "4", "5", "5"} { // surplus rating is ignored
		form.Add("ratings[]", r)
	}

	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp recommend.Response
	decodeEnvelope(t, rec, &resp)
	if len(resp.Items) != 1 || resp.Items[0].ID != 6 {
		t.Errorf("Items = %+v, want only movie 6", resp.Items)
	}
	if resp.Metadata.Resolved != 5 {
		t.Errorf("Resolved = %d, want 5", resp.Metadata.Resolved)
	}
}

func TestRecommendForm_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		form     url.Values
		wantCode string
	}{
		{
			name:     "non numeric rating",
			form:     url.Values{"movies[]": {"Movie 1"}, "ratings[]": {"great"}},
			wantCode: ErrCodeBadRequest,
		},
		{
			name:     "no pairs",
			form:     url.Values{"movies[]": {"Movie 1"}},
			wantCode: ErrCodeValidationFailed,
		},
	}

	router := testRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if env := decodeEnvelope(t, rec, nil); env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %q", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRecommendConfig(t *testing.T) {
	t.Parallel()

	router := testRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/config", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var cfg struct {
		Neighbors struct {
			MinCommonItems int `json:"min_common_items"`
			MaxPoolSize    int `json:"max_pool_size"`
			MaxNeighbors   int `json:"max_neighbors"`
		} `json:"neighbors"`
	}
	decodeEnvelope(t, rec, &cfg)
	if cfg.Neighbors.MinCommonItems != 5 || cfg.Neighbors.MaxPoolSize != 100 || cfg.Neighbors.MaxNeighbors != 50 {
		t.Errorf("neighbors = %+v, want 5/100/50", cfg.Neighbors)
	}
}

// stubRecommender returns a fixed error.
type stubRecommender struct {
	err error
}

func (s stubRecommender) Recommend(context.Context, []models.Preference) (*recommend.Response, error) {
	return nil, s.err
}

func (s stubRecommender) Config() *recommend.Config {
	return recommend.DefaultConfig()
}

func TestRecommend_EngineErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "timeout", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout, wantCode: ErrCodeTimeout},
		{name: "too many", err: recommend.ErrTooManyPreferences, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(stubRecommender{err: tt.err}, nil, DatasetStats{})
			rec := postJSON(t, http.HandlerFunc(h.Recommend), "/api/v1/recommendations",
				RecommendRequest{Preferences: queryPreferences()})

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if env := decodeEnvelope(t, rec, nil); env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %q", env.Error, tt.wantCode)
			}
			if tt.name == "internal" && strings.Contains(rec.Body.String(), "boom") {
				t.Error("internal error details leaked to client")
			}
		})
	}
}
