// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/validation"
)

// Movie handles GET /api/v1/movies/{id}.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		rw.BadRequest("Movie id must be an integer")
		return
	}

	item, ok := h.catalog.LookupByID(id)
	if !ok {
		rw.NotFound("Movie not found")
		return
	}
	rw.Success(item)
}

// SearchMovies handles GET /api/v1/movies/search?q=prefix&limit=n.
// Matching is a case-insensitive title prefix match.
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseMovieSearchRequest(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	items := h.catalog.Search(req.Query, req.Limit)
	rw.SuccessList(items, len(items))
}
