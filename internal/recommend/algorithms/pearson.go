// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"math"
)

// varianceEpsilon is the relative threshold below which a sum of squared
// deviations is treated as zero. Ratings that are all equal can leave a
// residue of a few ULPs after the (Σx)²/n subtraction.
const varianceEpsilon = 1e-12

// Pearson returns the Pearson correlation coefficient of two positionally
// aligned rating vectors.
//
// The result is in [-1, 1], or exactly 0 when either vector has zero
// variance (this includes n == 1). Pearson panics if the slices are empty or
// differ in length; callers only invoke it on groups that passed the overlap
// filter.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) {
		panic("algorithms: slice length mismatch")
	}
	if len(x) == 0 {
		panic("algorithms: zero length slices")
	}

	n := float64(len(x))
	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
		sumXY += x[i] * y[i]
	}

	sxx := sumXX - sumX*sumX/n
	syy := sumYY - sumY*sumY/n
	sxy := sumXY - sumX*sumY/n

	if sxx <= varianceEpsilon*sumXX || syy <= varianceEpsilon*sumYY {
		return 0
	}

	sim := sxy / math.Sqrt(sxx*syy)

	// Clamp rounding overshoot on perfectly correlated vectors.
	switch {
	case sim > 1:
		return 1
	case sim < -1:
		return -1
	}
	return sim
}

// ScoreNeighbors computes the similarity between the query ratings and each
// group. query maps item ID to the query rating; every item in a group must
// be present in query. The output preserves group order.
func ScoreNeighbors(query map[int]float64, groups []NeighborGroup) []SimilarityScore {
	scores := make([]SimilarityScore, 0, len(groups))
	for gi := range groups {
		g := &groups[gi]
		x := make([]float64, len(g.Ratings))
		y := make([]float64, len(g.Ratings))
		for i, r := range g.Ratings {
			x[i] = query[r.ItemID]
			y[i] = r.Rating
		}
		scores = append(scores, SimilarityScore{
			UserID:     g.UserID,
			Similarity: Pearson(x, y),
		})
	}
	return scores
}
