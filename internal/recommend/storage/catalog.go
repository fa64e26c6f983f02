// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package storage

import (
	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/models"
)

// MemoryCatalog is an immutable, indexed movie catalog.
type MemoryCatalog struct {
	items  []models.Item // catalog order, unique IDs
	byID   map[int]int   // item ID -> index into items
	titles *cache.TitleIndex
}

// NewMemoryCatalog indexes items. Items repeating an earlier ID are dropped.
func NewMemoryCatalog(items []models.Item) *MemoryCatalog {
	c := &MemoryCatalog{
		items:  make([]models.Item, 0, len(items)),
		byID:   make(map[int]int, len(items)),
		titles: cache.NewTitleIndex(),
	}

	for _, item := range items {
		if _, dup := c.byID[item.ID]; dup {
			continue
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
		c.titles.Insert(item.Title, item.ID)
	}
	return c
}

// Lookup resolves a title to an item.
//
// An exact (normalized) match returns the first item with that title.
// Otherwise a trailing "(YYYY)" is split off and the first item with the
// remaining title and that year is returned.
func (c *MemoryCatalog) Lookup(title string) (models.Item, bool) {
	if ids := c.titles.Lookup(title); len(ids) > 0 {
		return c.items[c.byID[ids[0]]], true
	}

	bare, year := models.SplitTitleYear(title)
	if year == "" {
		return models.Item{}, false
	}
	for _, id := range c.titles.Lookup(bare) {
		if item := c.items[c.byID[id]]; item.Year == year {
			return item, true
		}
	}
	return models.Item{}, false
}

// LookupByID returns the item with the given ID.
func (c *MemoryCatalog) LookupByID(id int) (models.Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Item{}, false
	}
	return c.items[idx], true
}

// Search returns up to limit items whose title starts with prefix,
// ordered by title.
func (c *MemoryCatalog) Search(prefix string, limit int) []models.Item {
	ids := c.titles.Search(prefix, limit)
	out := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[c.byID[id]])
	}
	return out
}

// Len returns the number of catalog items.
func (c *MemoryCatalog) Len() int {
	return len(c.items)
}
