// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package storage holds the in-memory catalog and rating corpus the
// recommendation engine reads from.
//
// Both stores are built once from a fully loaded dataset and are immutable
// afterwards, so concurrent reads need no locking.
//
// # Catalog
//
// MemoryCatalog resolves user-supplied titles to items. Matching is
// case-insensitive and ignores surrounding whitespace. A "Title (YYYY)"
// query selects the item with that year when several share the title.
// When a title is duplicated in the source file the first item wins.
//
// # Corpus
//
// MemoryCorpus indexes ratings by item and by user. Queries return rows
// in the original file order. Duplicate (user, item) rows keep the first.
//
// # Usage
//
//	catalog := storage.NewMemoryCatalog(ds.Items)
//	corpus := storage.NewMemoryCorpus(ds.Ratings)
//
//	item, ok := catalog.Lookup("Toy Story (1995)")
//	rows := corpus.RatingsForItems(map[int]struct{}{item.ID: {}})
package storage
