// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"sort"

	"github.com/tomtom215/cinematch/internal/models"
)

// GroupByUser partitions corpus rows by user in a single pass.
//
// Groups are returned in ascending user ID order and each group's ratings
// are sorted by ascending item ID so they align with the query vector.
// The input slice is not modified.
//
//nolint:gocritic // rangeValCopy: Rating is small enough to copy
func GroupByUser(rows []models.Rating) []NeighborGroup {
	if len(rows) == 0 {
		return nil
	}

	index := make(map[int]int)
	groups := make([]NeighborGroup, 0)
	for _, r := range rows {
		gi, ok := index[r.UserID]
		if !ok {
			gi = len(groups)
			index[r.UserID] = gi
			groups = append(groups, NeighborGroup{UserID: r.UserID})
		}
		groups[gi].Ratings = append(groups[gi].Ratings, r)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].UserID < groups[j].UserID
	})
	for gi := range groups {
		ratings := groups[gi].Ratings
		sort.SliceStable(ratings, func(i, j int) bool {
			return ratings[i].ItemID < ratings[j].ItemID
		})
	}

	return groups
}

// FilterMinOverlap keeps groups with at least minOverlap co-rated items,
// preserving order.
func FilterMinOverlap(groups []NeighborGroup, minOverlap int) []NeighborGroup {
	kept := make([]NeighborGroup, 0, len(groups))
	for gi := range groups {
		if groups[gi].Overlap() >= minOverlap {
			kept = append(kept, groups[gi])
		}
	}
	return kept
}

// CapPool orders groups by descending overlap and keeps at most maxPool.
// The sort is stable: groups with equal overlap keep their input order.
// A non-positive maxPool disables the cap.
func CapPool(groups []NeighborGroup, maxPool int) []NeighborGroup {
	pool := make([]NeighborGroup, len(groups))
	copy(pool, groups)

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Overlap() > pool[j].Overlap()
	})

	if maxPool > 0 && len(pool) > maxPool {
		pool = pool[:maxPool]
	}
	return pool
}

// TopBySimilarity orders scores by descending similarity and keeps at most k.
// The sort is stable: equal similarities keep their input order.
// A non-positive k disables the cap.
func TopBySimilarity(scores []SimilarityScore, k int) []SimilarityScore {
	top := make([]SimilarityScore, len(scores))
	copy(top, scores)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Similarity > top[j].Similarity
	})

	if k > 0 && len(top) > k {
		top = top[:k]
	}
	return top
}
