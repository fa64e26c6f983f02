// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

// CachePruner drops expired cache entries. *recommend.Engine implements it.
type CachePruner interface {
	PruneCache() int
}

// CacheJanitorService periodically removes expired recommendation results
// so idle entries do not hold memory until the LRU evicts them.
type CacheJanitorService struct {
	pruner   CachePruner
	interval time.Duration
	name     string
}

// NewCacheJanitorService creates a janitor. A non-positive interval
// defaults to one minute.
func NewCacheJanitorService(pruner CachePruner, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		pruner:   pruner,
		interval: interval,
		name:     "cache-janitor",
	}
}

// Serve prunes on every tick until ctx is canceled.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(s.name)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.pruner.PruneCache(); removed > 0 {
				logger.Debug().Int("removed", removed).Msg("Pruned expired recommendations")
			}
		}
	}
}

// String implements fmt.Stringer; suture uses it in event logs.
func (s *CacheJanitorService) String() string {
	return s.name
}
