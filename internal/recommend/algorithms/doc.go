// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package algorithms implements the stages of user-based collaborative
// filtering with Pearson correlation.
//
// Every function in this package is pure: inputs are never mutated and no
// state survives between calls. The recommend.Engine composes the stages
// into a single request pipeline.
//
// # Stages
//
//	GroupByUser        corpus rows on query items -> one NeighborGroup per user
//	FilterMinOverlap   keep users with enough co-rated items
//	CapPool            stable sort by overlap, keep the largest groups
//	ScoreNeighbors     Pearson similarity per group
//	TopBySimilarity    stable sort by similarity, keep the closest users
//	Aggregate          similarity-weighted average rating per item
//	Rank               order item scores for presentation
//
// # Similarity
//
// Pearson uses the closed form over sums:
//
//	Sxx = Σx² − (Σx)²/n
//	Syy = Σy² − (Σy)²/n
//	Sxy = Σxy − (Σx·Σy)/n
//	sim = Sxy / sqrt(Sxx·Syy)
//
// and returns exactly 0 when either vector has no variance. A user who
// agrees perfectly with the query on constant ratings therefore scores 0,
// not 1.
//
// # Determinism
//
// Ordering never depends on map iteration. Groups are emitted in ascending
// user ID order, and every truncating sort is stable, so ties resolve the
// same way on every run.
package algorithms
