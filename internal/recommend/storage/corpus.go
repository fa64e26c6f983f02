// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package storage

import (
	"slices"

	"github.com/tomtom215/cinematch/internal/models"
)

// userItem identifies a (user, item) pair.
type userItem struct {
	user, item int
}

// MemoryCorpus is an immutable rating corpus indexed by item and by user.
type MemoryCorpus struct {
	rows   []models.Rating
	byItem map[int][]int // item ID -> ascending row indices
	byUser map[int][]int // user ID -> ascending row indices
}

// NewMemoryCorpus indexes rows, keeping file order. A repeated (user, item)
// pair keeps the first rating.
func NewMemoryCorpus(rows []models.Rating) *MemoryCorpus {
	c := &MemoryCorpus{
		rows:   make([]models.Rating, 0, len(rows)),
		byItem: make(map[int][]int),
		byUser: make(map[int][]int),
	}

	seen := make(map[userItem]struct{}, len(rows))
	for _, r := range rows {
		key := userItem{r.UserID, r.ItemID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		idx := len(c.rows)
		c.rows = append(c.rows, r)
		c.byItem[r.ItemID] = append(c.byItem[r.ItemID], idx)
		c.byUser[r.UserID] = append(c.byUser[r.UserID], idx)
	}
	return c
}

// RatingsForItems returns every rating of any item in items, in corpus order.
func (c *MemoryCorpus) RatingsForItems(items map[int]struct{}) []models.Rating {
	return c.collect(c.byItem, items)
}

// RatingsForUsers returns every rating by any user in users, in corpus order.
func (c *MemoryCorpus) RatingsForUsers(users map[int]struct{}) []models.Rating {
	return c.collect(c.byUser, users)
}

func (c *MemoryCorpus) collect(index map[int][]int, keys map[int]struct{}) []models.Rating {
	var idx []int
	for key := range keys {
		idx = append(idx, index[key]...)
	}
	if len(idx) == 0 {
		return nil
	}
	slices.Sort(idx)

	out := make([]models.Rating, len(idx))
	for i, n := range idx {
		out[i] = c.rows[n]
	}
	return out
}

// Len returns the number of distinct (user, item) ratings.
func (c *MemoryCorpus) Len() int {
	return len(c.rows)
}

// NumUsers returns the number of distinct users.
func (c *MemoryCorpus) NumUsers() int {
	return len(c.byUser)
}

// NumItems returns the number of distinct rated items.
func (c *MemoryCorpus) NumItems() int {
	return len(c.byItem)
}
