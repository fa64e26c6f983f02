// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package algorithms

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/cinematch/internal/models"
)

const floatTolerance = 1e-9

func TestPearson(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    []float64
		y    []float64
		want float64
	}{
		{
			name: "identical distinct ratings",
			x:    []float64{1, 2, 3, 4, 5},
			y:    []float64{1, 2, 3, 4, 5},
			want: 1,
		},
		{
			name: "reversed ratings",
			x:    []float64{1, 2, 3, 4, 5},
			y:    []float64{5, 4, 3, 2, 1},
			want: -1,
		},
		{
			name: "identical constant ratings have no variance",
			x:    []float64{4, 4, 4, 4, 4},
			y:    []float64{4, 4, 4, 4, 4},
			want: 0,
		},
		{
			name: "constant query",
			x:    []float64{3, 3, 3, 3, 3},
			y:    []float64{1, 2, 3, 4, 5},
			want: 0,
		},
		{
			name: "constant neighbor",
			x:    []float64{1, 2, 3, 4, 5},
			y:    []float64{2.5, 2.5, 2.5, 2.5, 2.5},
			want: 0,
		},
		{
			name: "single co-rated item",
			x:    []float64{5},
			y:    []float64{1},
			want: 0,
		},
		{
			name: "constant non-representable ratings",
			x:    []float64{0.1, 0.1, 0.1},
			y:    []float64{1, 2, 3},
			want: 0,
		},
		{
			name: "affine transform is perfectly correlated",
			x:    []float64{1, 2, 3, 4, 5},
			y:    []float64{2.5, 3, 3.5, 4, 4.5},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Pearson(tt.x, tt.y)
			if math.Abs(got-tt.want) > floatTolerance {
				t.Errorf("Pearson() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPearson_MatchesReferenceCorrelation(t *testing.T) {
	t.Parallel()

	vectors := []struct {
		name string
		x    []float64
		y    []float64
	}{
		{"movielens style", []float64{4, 3.5, 5, 2, 4.5, 3}, []float64{3.5, 3, 4, 2.5, 5, 2}},
		{"negative association", []float64{5, 4, 1, 2, 0.5}, []float64{1, 2, 4.5, 4, 5}},
		{"weak association", []float64{1, 5, 2, 4, 3, 3}, []float64{2, 2, 5, 1, 4, 3}},
		{"long vector", []float64{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 3.5}, []float64{2, 1, 4, 3, 5, 1, 1, 3, 5, 4, 0.5}},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			t.Parallel()
			want := stat.Correlation(v.x, v.y, nil)

			got := Pearson(v.x, v.y)
			if math.Abs(got-want) > floatTolerance {
				t.Errorf("Pearson(x, y) = %v, stat.Correlation = %v", got, want)
			}

			swapped := Pearson(v.y, v.x)
			if math.Abs(swapped-got) > floatTolerance {
				t.Errorf("Pearson(y, x) = %v, want %v", swapped, got)
			}
		})
	}
}

func TestPearson_BoundedAndNeverNaN(t *testing.T) {
	t.Parallel()

	ratings := []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5}

	// Walk a deterministic family of vectors, including many constant ones.
	for seed := 0; seed < 200; seed++ {
		n := 1 + seed%8
		x := make([]float64, n)
		y := make([]float64, n)
		for i := 0; i < n; i++ {
			x[i] = ratings[(seed*7+i*3)%len(ratings)]
			y[i] = ratings[(seed*5+i*(seed%4))%len(ratings)]
		}

		sim := Pearson(x, y)
		if math.IsNaN(sim) || math.IsInf(sim, 0) {
			t.Fatalf("Pearson(%v, %v) = %v, want finite", x, y, sim)
		}
		if sim < -1 || sim > 1 {
			t.Fatalf("Pearson(%v, %v) = %v, want in [-1, 1]", x, y, sim)
		}
	}
}

func TestPearson_PanicsOnCallerBugs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    []float64
		y    []float64
	}{
		{"empty", nil, nil},
		{"length mismatch", []float64{1, 2}, []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Error("Pearson() did not panic")
				}
			}()
			Pearson(tt.x, tt.y)
		})
	}
}

func TestScoreNeighbors(t *testing.T) {
	t.Parallel()

	query := map[int]float64{10: 1, 20: 2, 30: 3, 40: 4, 50: 5}
	groups := []NeighborGroup{
		{UserID: 7, Ratings: ratingsFor(7, []int{10, 20, 30, 40, 50}, []float64{5, 4, 3, 2, 1})},
		{UserID: 3, Ratings: ratingsFor(3, []int{10, 20, 30, 40, 50}, []float64{1, 2, 3, 4, 5})},
		{UserID: 9, Ratings: ratingsFor(9, []int{10, 20, 30, 40, 50}, []float64{3, 3, 3, 3, 3})},
	}

	scores := ScoreNeighbors(query, groups)
	want := []SimilarityScore{
		{UserID: 7, Similarity: -1},
		{UserID: 3, Similarity: 1},
		{UserID: 9, Similarity: 0},
	}

	if len(scores) != len(want) {
		t.Fatalf("len(scores) = %d, want %d", len(scores), len(want))
	}
	for i := range want {
		if scores[i].UserID != want[i].UserID {
			t.Errorf("scores[%d].UserID = %d, want %d", i, scores[i].UserID, want[i].UserID)
		}
		if math.Abs(scores[i].Similarity-want[i].Similarity) > floatTolerance {
			t.Errorf("scores[%d].Similarity = %v, want %v", i, scores[i].Similarity, want[i].Similarity)
		}
	}
}

// ratingsFor builds one user's ratings over the given items.
func ratingsFor(userID int, items []int, values []float64) []models.Rating {
	out := make([]models.Rating, len(items))
	for i := range items {
		out[i] = models.Rating{UserID: userID, ItemID: items[i], Rating: values[i]}
	}
	return out
}
