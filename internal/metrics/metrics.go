// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeCacheHit = "cache_hit"
	OutcomeError    = "error"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Recommendation pipeline duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	RecommendStageSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_stage_size",
			Help:    "Number of users or items surviving each pipeline stage",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000, 10000},
		},
		[]string{"stage"},
	)

	RecommendUnresolvedTitles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_unresolved_titles_total",
			Help: "Total number of preference titles with no catalog match",
		},
	)

	// Dataset Metrics
	DatasetLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_load_duration_seconds",
			Help: "Duration of the most recent dataset load in seconds",
		},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of rows loaded from the dataset",
		},
		[]string{"kind"}, // "movies", "ratings"
	)
)

// StageSizes holds the population of each pipeline stage for one request.
type StageSizes struct {
	Candidates int
	Qualified  int
	Pool       int
	Neighbors  int
	Scored     int
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one pipeline run. Stage sizes are only
// observed for fresh computations; cache hits and errors carry none.
func RecordRecommendation(duration time.Duration, outcome string, unresolved int, sizes *StageSizes) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
	if unresolved > 0 {
		RecommendUnresolvedTitles.Add(float64(unresolved))
	}
	if sizes == nil {
		return
	}
	RecommendStageSize.WithLabelValues("candidates").Observe(float64(sizes.Candidates))
	RecommendStageSize.WithLabelValues("qualified").Observe(float64(sizes.Qualified))
	RecommendStageSize.WithLabelValues("pool").Observe(float64(sizes.Pool))
	RecommendStageSize.WithLabelValues("neighbors").Observe(float64(sizes.Neighbors))
	RecommendStageSize.WithLabelValues("scored").Observe(float64(sizes.Scored))
}

// RecordDatasetLoad records a completed dataset load.
func RecordDatasetLoad(duration time.Duration, movies, ratings int) {
	DatasetLoadDuration.Set(duration.Seconds())
	DatasetRows.WithLabelValues("movies").Set(float64(movies))
	DatasetRows.WithLabelValues("ratings").Set(float64(ratings))
}
