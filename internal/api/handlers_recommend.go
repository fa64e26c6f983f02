// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// Recommend handles POST /api/v1/recommendations.
//
// Body: {"preferences":[{"title":"Toy Story","year":"1995","rating":4.5}]}
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		rw.BadRequest("Invalid JSON body: " + err.Error())
		return
	}

	h.recommend(rw, r, req.Preferences)
}

// RecommendForm handles POST /recommendations with form-encoded
// movies[] and ratings[] fields, answering with the same JSON as Recommend.
func (h *Handler) RecommendForm(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	prefs, err := parsePreferenceForm(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	h.recommend(rw, r, prefs)
}

// RecommendConfig handles GET /api/v1/recommendations/config.
func (h *Handler) RecommendConfig(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Config())
}

func (h *Handler) recommend(rw *ResponseWriter, r *http.Request, prefs []models.Preference) {
	req := RecommendRequest{Preferences: prefs}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), req.Preferences)
	switch {
	case err == nil:
	case errors.Is(err, recommend.ErrTooManyPreferences):
		rw.ValidationError(err.Error(), nil)
		return
	case errors.Is(err, context.DeadlineExceeded):
		rw.Timeout("Recommendation timed out")
		return
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Msg("Client cancelled recommendation request")
		rw.ServiceUnavailable("Request cancelled")
		return
	default:
		rw.InternalError("Failed to generate recommendations", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("preferences", len(req.Preferences)).
		Int("resolved", resp.Metadata.Resolved).
		Int("neighbors", resp.Metadata.Neighbors).
		Int("results", len(resp.Items)).
		Bool("cache_hit", resp.Metadata.CacheHit).
		Msg("Recommendations served")

	rw.Success(resp)
}
