// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP surface of the recommendation service.

Routing uses chi with production middleware from the chi ecosystem
(go-chi/cors, go-chi/httprate) plus the in-house request ID and Prometheus
middleware. Every JSON endpoint answers with the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "..."}}

# Endpoints

	GET  /api/v1/health/live              liveness probe
	GET  /api/v1/health/ready             readiness probe with dataset sizes
	POST /api/v1/recommendations          JSON preferences -> ranked movies
	GET  /api/v1/recommendations/config   active engine configuration
	POST /recommendations                 form-encoded movies[]/ratings[] pairs
	GET  /api/v1/movies/search            title prefix search (?q=toy&limit=10)
	GET  /api/v1/movies/{id}              single catalog entry
	GET  /metrics                         Prometheus metrics
*/
package api
