// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"math"
	"sort"

	"github.com/tomtom215/cinematch/internal/models"
)

// similaritySumEpsilon is the magnitude below which a total similarity is
// treated as zero. Positive and negative neighbors can cancel to a rounding
// residue that would otherwise blow the weighted average up.
const similaritySumEpsilon = 1e-12

// itemAccumulator collects the weighted sums for one item.
type itemAccumulator struct {
	weighted     float64
	similarity   float64
	contributors int
}

// Aggregate computes the similarity-weighted average rating per item:
//
//	score(i) = Σ sim(u)·r(u, i) / Σ sim(u)
//
// over every neighbor u that rated item i. rows may contain ratings from
// users outside neighbors; those are ignored. Items whose total similarity
// is zero have no defined score and are omitted.
//
// The result is ordered by ascending item ID; use Rank to order by score.
//
//nolint:gocritic // rangeValCopy: Rating is small enough to copy
func Aggregate(neighbors []SimilarityScore, rows []models.Rating) []RecommendationScore {
	if len(neighbors) == 0 || len(rows) == 0 {
		return nil
	}

	weights := make(map[int]float64, len(neighbors))
	for _, n := range neighbors {
		weights[n.UserID] = n.Similarity
	}

	acc := make(map[int]*itemAccumulator)
	for _, r := range rows {
		sim, ok := weights[r.UserID]
		if !ok {
			continue
		}
		a := acc[r.ItemID]
		if a == nil {
			a = &itemAccumulator{}
			acc[r.ItemID] = a
		}
		a.weighted += sim * r.Rating
		a.similarity += sim
		a.contributors++
	}

	scores := make([]RecommendationScore, 0, len(acc))
	for itemID, a := range acc {
		if math.Abs(a.similarity) < similaritySumEpsilon {
			continue
		}
		scores = append(scores, RecommendationScore{
			ItemID:       itemID,
			Score:        a.weighted / a.similarity,
			Contributors: a.contributors,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].ItemID < scores[j].ItemID
	})
	return scores
}

// Rank orders scores by descending score with ascending item ID breaking
// ties, dropping any item in exclude, and keeps at most limit entries.
// A non-positive limit disables truncation.
func Rank(scores []RecommendationScore, exclude map[int]struct{}, limit int) []RecommendationScore {
	ranked := make([]RecommendationScore, 0, len(scores))
	for _, s := range scores {
		if _, skip := exclude[s.ItemID]; skip {
			continue
		}
		ranked = append(ranked, s)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ItemID < ranked[j].ItemID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
