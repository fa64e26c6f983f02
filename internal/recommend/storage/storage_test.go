// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package storage

import (
	"slices"
	"testing"

	"github.com/tomtom215/cinematch/internal/models"
)

func testCatalog() *MemoryCatalog {
	return NewMemoryCatalog([]models.Item{
		{ID: 1, Title: "Toy Story", Year: "1995"},
		{ID: 2, Title: "Heat", Year: "1995"},
		{ID: 3, Title: "Heat", Year: "1986"},
		{ID: 1, Title: "Duplicate ID", Year: "2000"},
		{ID: 4, Title: "Toys", Year: "1992"},
	})
}

func TestMemoryCatalog_Lookup(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()

	tests := []struct {
		name   string
		title  string
		wantID int
		wantOK bool
	}{
		{"exact", "Toy Story", 1, true},
		{"case and whitespace", "  toy STORY ", 1, true},
		{"duplicate title keeps first", "Heat", 2, true},
		{"year selects remake", "Heat (1986)", 3, true},
		{"year selects original", "heat (1995)", 2, true},
		{"unknown year", "Heat (2001)", 0, false},
		{"unknown title", "Alien", 0, false},
		{"duplicate ID dropped", "Duplicate ID", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			item, ok := catalog.Lookup(tt.title)
			if ok != tt.wantOK || (ok && item.ID != tt.wantID) {
				t.Errorf("Lookup(%q) = %d, %v; want %d, %v", tt.title, item.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestMemoryCatalog_LookupByIDAndSearch(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()

	if catalog.Len() != 4 {
		t.Errorf("Len() = %d, want 4", catalog.Len())
	}
	if item, ok := catalog.LookupByID(1); !ok || item.Title != "Toy Story" {
		t.Errorf("LookupByID(1) = %+v, %v; want Toy Story", item, ok)
	}
	if _, ok := catalog.LookupByID(99); ok {
		t.Error("LookupByID(99) should miss")
	}

	got := catalog.Search("toy", 10)
	ids := make([]int, len(got))
	for i, item := range got {
		ids[i] = item.ID
	}
	if !slices.Equal(ids, []int{1, 4}) {
		t.Errorf("Search(toy) IDs = %v, want [1 4]", ids)
	}
}

func TestMemoryCorpus_DedupAndOrder(t *testing.T) {
	t.Parallel()

	corpus := NewMemoryCorpus([]models.Rating{
		{UserID: 2, ItemID: 10, Rating: 4},
		{UserID: 1, ItemID: 20, Rating: 3},
		{UserID: 2, ItemID: 10, Rating: 1}, // duplicate pair, dropped
		{UserID: 3, ItemID: 10, Rating: 5},
		{UserID: 1, ItemID: 30, Rating: 2},
	})

	if corpus.Len() != 4 {
		t.Errorf("Len() = %d, want 4", corpus.Len())
	}
	if corpus.NumUsers() != 3 || corpus.NumItems() != 3 {
		t.Errorf("NumUsers, NumItems = %d, %d; want 3, 3", corpus.NumUsers(), corpus.NumItems())
	}

	byItems := corpus.RatingsForItems(map[int]struct{}{10: {}, 20: {}})
	want := []models.Rating{
		{UserID: 2, ItemID: 10, Rating: 4},
		{UserID: 1, ItemID: 20, Rating: 3},
		{UserID: 3, ItemID: 10, Rating: 5},
	}
	if !slices.Equal(byItems, want) {
		t.Errorf("RatingsForItems = %+v, want %+v", byItems, want)
	}

	byUsers := corpus.RatingsForUsers(map[int]struct{}{1: {}})
	wantUsers := []models.Rating{
		{UserID: 1, ItemID: 20, Rating: 3},
		{UserID: 1, ItemID: 30, Rating: 2},
	}
	if !slices.Equal(byUsers, wantUsers) {
		t.Errorf("RatingsForUsers = %+v, want %+v", byUsers, wantUsers)
	}

	if got := corpus.RatingsForItems(map[int]struct{}{99: {}}); got != nil {
		t.Errorf("RatingsForItems(unknown) = %v, want nil", got)
	}
}
