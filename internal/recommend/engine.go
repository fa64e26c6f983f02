// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend/algorithms"
)

// Engine runs the collaborative filtering pipeline against a catalog and
// corpus. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog Catalog
	corpus  Corpus

	// nil when caching is disabled
	cache *cache.LRU[*Response]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, catalog Catalog, corpus Corpus, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil || corpus == nil {
		return nil, fmt.Errorf("catalog and corpus are required")
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: catalog,
		corpus:  corpus,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// resolvedPreference is a preference matched to a catalog item.
type resolvedPreference struct {
	itemID int
	rating float64
}

// Recommend returns up to Limits.Results items for the given preferences.
//
// Unknown titles are skipped and reported in the metadata. When no
// preference resolves the response holds no items and no error.
func (e *Engine) Recommend(ctx context.Context, prefs []models.Preference) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if len(prefs) > e.config.Limits.MaxPreferences {
		e.errorCount.Add(1)
		metrics.RecordRecommendation(time.Since(start), metrics.OutcomeError, 0, nil)
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyPreferences, len(prefs), e.config.Limits.MaxPreferences)
	}

	requestID := uuid.New().String()
	logger := e.logger.With().
		Str("request_id", requestID).
		Int("preferences", len(prefs)).
		Logger()
	logger.Debug().Msg("processing recommendation request")

	key := cacheKey(prefs)
	if resp := e.tryGetCachedResponse(key, requestID, start); resp != nil {
		logger.Debug().Msg("cache hit")
		metrics.RecordRecommendation(time.Since(start), metrics.OutcomeCacheHit, 0, nil)
		return resp, nil
	}

	if e.config.Limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Limits.Timeout)
		defer cancel()
	}

	resp, err := e.run(ctx, prefs)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation(time.Since(start), metrics.OutcomeError, 0, nil)
		logger.Warn().Err(err).Msg("recommendation failed")
		return nil, err
	}

	resp.Metadata.RequestID = requestID
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()
	e.storeCache(key, resp)

	outcome := metrics.OutcomeOK
	if len(resp.Items) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(time.Since(start), outcome, len(resp.Metadata.Unresolved), &metrics.StageSizes{
		Candidates: resp.Metadata.CandidateUsers,
		Qualified:  resp.Metadata.Qualified,
		Pool:       resp.Metadata.Pool,
		Neighbors:  resp.Metadata.Neighbors,
		Scored:     resp.Metadata.ScoredItems,
	})

	logger.Debug().
		Int("resolved", resp.Metadata.Resolved).
		Int("neighbors", resp.Metadata.Neighbors).
		Int("returned", len(resp.Items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// run executes the pipeline stages, checking ctx between them.
func (e *Engine) run(ctx context.Context, prefs []models.Preference) (*Response, error) {
	resp := &Response{Items: []ScoredItem{}}

	resolved, unresolved := e.resolve(prefs)
	resp.Metadata.Resolved = len(resolved)
	resp.Metadata.Unresolved = unresolved
	if len(resolved) == 0 {
		return resp, nil
	}

	query := make(map[int]float64, len(resolved))
	rated := make(map[int]struct{}, len(resolved))
	for _, p := range resolved {
		query[p.itemID] = p.rating
		rated[p.itemID] = struct{}{}
	}

	groups := algorithms.GroupByUser(e.corpus.RatingsForItems(rated))
	resp.Metadata.CandidateUsers = len(groups)
	if err := stageErr(ctx, "grouping"); err != nil {
		return nil, err
	}

	qualified := algorithms.FilterMinOverlap(groups, e.config.Neighbors.MinCommonItems)
	resp.Metadata.Qualified = len(qualified)
	if len(qualified) == 0 {
		return resp, nil
	}

	pool := algorithms.CapPool(qualified, e.config.Neighbors.MaxPoolSize)
	resp.Metadata.Pool = len(pool)

	scores := algorithms.ScoreNeighbors(query, pool)
	if err := stageErr(ctx, "similarity"); err != nil {
		return nil, err
	}

	neighbors := algorithms.TopBySimilarity(scores, e.config.Neighbors.MaxNeighbors)
	resp.Metadata.Neighbors = len(neighbors)

	neighborIDs := make(map[int]struct{}, len(neighbors))
	for _, n := range neighbors {
		neighborIDs[n.UserID] = struct{}{}
	}
	predicted := algorithms.Aggregate(neighbors, e.corpus.RatingsForUsers(neighborIDs))
	resp.Metadata.ScoredItems = len(predicted)
	if err := stageErr(ctx, "aggregation"); err != nil {
		return nil, err
	}

	var exclude map[int]struct{}
	if e.config.ExcludeRated {
		exclude = rated
	}
	resp.Items = e.topItems(algorithms.Rank(predicted, exclude, 0))
	return resp, nil
}

// resolve maps preferences to catalog items in request order. A later
// preference for an already resolved item is ignored.
func (e *Engine) resolve(prefs []models.Preference) ([]resolvedPreference, []string) {
	resolved := make([]resolvedPreference, 0, len(prefs))
	seen := make(map[int]struct{}, len(prefs))
	var unresolved []string

	for _, p := range prefs {
		title := strings.TrimSpace(p.Title)
		if p.Year != "" {
			title = fmt.Sprintf("%s (%s)", title, p.Year)
		}

		item, ok := e.catalog.Lookup(title)
		if !ok {
			unresolved = append(unresolved, p.Title)
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		resolved = append(resolved, resolvedPreference{itemID: item.ID, rating: p.Rating})
	}
	return resolved, unresolved
}

// topItems attaches catalog metadata to ranked scores, skipping items the
// catalog does not know, until Limits.Results items are collected.
func (e *Engine) topItems(ranked []algorithms.RecommendationScore) []ScoredItem {
	limit := e.config.Limits.Results
	items := make([]ScoredItem, 0, min(limit, len(ranked)))
	for _, r := range ranked {
		if len(items) == limit {
			break
		}
		item, ok := e.catalog.LookupByID(r.ItemID)
		if !ok {
			continue
		}
		items = append(items, ScoredItem{Item: item, Score: r.Score, Contributors: r.Contributors})
	}
	return items
}

// stageErr reports a cancelled or expired context after a pipeline stage.
func stageErr(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("recommendation aborted after %s: %w", stage, err)
	}
	return nil
}

// tryGetCachedResponse returns a copy of a cached response, or nil.
func (e *Engine) tryGetCachedResponse(key, requestID string, start time.Time) *Response {
	if e.cache == nil {
		return nil
	}

	cached, ok := e.cache.Get(key)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}
	e.cacheHits.Add(1)

	// Cached responses are shared; hand out a copy with fresh metadata.
	resp := &Response{
		Items:    slices.Clone(cached.Items),
		Metadata: cached.Metadata,
	}
	resp.Metadata.RequestID = requestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()
	return resp
}

func (e *Engine) storeCache(key string, resp *Response) {
	if e.cache == nil {
		return
	}
	stored := *resp
	stored.Items = slices.Clone(resp.Items)
	e.cache.Add(key, &stored)
}

// cacheKey identifies a preference list. Order matters: it decides which
// duplicate wins.
func cacheKey(prefs []models.Preference) string {
	normalized := make([]models.Preference, len(prefs))
	for i, p := range prefs {
		normalized[i] = models.Preference{
			Title:  cache.NormalizeTitle(p.Title),
			Year:   p.Year,
			Rating: p.Rating,
		}
	}
	return cache.GenerateKey("recommend", normalized)
}

// PruneCache drops expired cached responses and returns how many were
// removed. It is a no-op when caching is disabled.
func (e *Engine) PruneCache() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.RemoveExpired()
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Stats returns request counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Errors:      e.errorCount.Load(),
	}
}
