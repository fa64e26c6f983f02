// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend implements user-based collaborative filtering over a
// static movie catalog and rating corpus.
//
// # Pipeline
//
// A request carries a list of (title, rating) preferences. The engine:
//
//  1. Resolves titles against the catalog, dropping unknown titles and
//     keeping the first occurrence of each item.
//  2. Groups every corpus rating of the resolved items by user.
//  3. Keeps users with at least MinCommonItems co-rated items.
//  4. Orders them by overlap (stable) and keeps MaxPoolSize.
//  5. Scores each with the Pearson correlation over the co-rated items,
//     orders by similarity (stable) and keeps MaxNeighbors.
//  6. Predicts a rating for every item the neighbors rated as the
//     similarity-weighted average of their ratings.
//  7. Returns the Results best items, highest score first.
//
// The numeric stages live in the algorithms subpackage; the catalog and
// corpus stores live in storage.
//
// # Determinism
//
// Every ordering in the pipeline is total or stable, so identical inputs
// always produce identical outputs.
//
// # Result Cache
//
// Intermediate values (neighbor groups, similarities, predictions) never
// outlive a call. Cache.Enabled adds an opt-in LRU of final responses keyed
// by the preference list; it is off in DefaultConfig. Since the corpus is
// immutable a cached response equals a fresh one apart from its metadata.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog, corpus, logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, []models.Preference{
//	    {Title: "Toy Story", Rating: 5},
//	    {Title: "Heat", Year: "1995", Rating: 3.5},
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. The catalog and corpus are
// read-only after construction; the result cache is internally locked.
package recommend
