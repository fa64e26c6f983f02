// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package cache provides the in-memory data structures that sit in front of
the recommendation engine.

# Components

  - LRU: thread-safe, generic least-recently-used cache with lazy TTL expiry.
    The API layer stores recommendation responses in it, keyed by GenerateKey.
  - TitleIndex: case-insensitive prefix tree over catalog titles used for
    exact title resolution and the movie search endpoint.

# Usage

	results := cache.NewLRU[*recommend.Response](1000, 10*time.Minute)
	key := cache.GenerateKey("recommend", prefs)
	if resp, ok := results.Get(key); ok {
	    return resp
	}

	idx := cache.NewTitleIndex()
	idx.Insert("Toy Story", 1)
	ids := idx.Search("toy", 10)

# Thread Safety

All exported types are safe for concurrent use.
*/
package cache
