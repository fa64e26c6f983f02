// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered on the default registry via promauto and exposed at
/metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limited requests (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommend_requests_total: Pipeline runs (counter)
    Labels: outcome (ok, empty, cache_hit, error)
  - recommend_duration_seconds: Pipeline latency (histogram)
  - recommend_stage_size: Users or items surviving each stage (histogram)
    Labels: stage (candidates, qualified, pool, neighbors, scored)
  - recommend_unresolved_titles_total: Preference titles with no catalog match (counter)

Dataset Metrics:
  - dataset_load_duration_seconds: Time to load the CSV dataset (gauge)
  - dataset_rows: Rows loaded per kind (gauge)
    Labels: kind (movies, ratings)

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, prefs)
	metrics.RecordRecommendation(time.Since(start), outcome, sizes)

# Thread Safety

All functions are safe for concurrent use. Prometheus collectors handle
their own synchronization.
*/
package metrics
