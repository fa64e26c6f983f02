// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import "testing"

func TestSplitTitleYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantYear  string
	}{
		{name: "movielens title", raw: "Toy Story (1995)", wantTitle: "Toy Story", wantYear: "1995"},
		{name: "no year", raw: "Toy Story", wantTitle: "Toy Story", wantYear: ""},
		{name: "trailing whitespace", raw: "  Heat (1995)  ", wantTitle: "Heat", wantYear: "1995"},
		{name: "non numeric parenthetical", raw: "City of Lost Children, The (Cité des enfants perdus, La)", wantTitle: "City of Lost Children, The (Cité des enfants perdus, La)", wantYear: ""},
		{name: "alternate title then year", raw: "Shanghai Triad (Yao a yao yao dao waipo qiao) (1995)", wantTitle: "Shanghai Triad (Yao a yao yao dao waipo qiao)", wantYear: "1995"},
		{name: "only year", raw: "(1995)", wantTitle: "(1995)", wantYear: ""},
		{name: "empty", raw: "", wantTitle: "", wantYear: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			title, year := SplitTitleYear(tt.raw)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if year != tt.wantYear {
				t.Errorf("year = %q, want %q", year, tt.wantYear)
			}
		})
	}
}

func TestItem_DisplayTitle(t *testing.T) {
	t.Parallel()

	if got := (Item{Title: "Heat", Year: "1995"}).DisplayTitle(); got != "Heat (1995)" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "Heat (1995)")
	}
	if got := (Item{Title: "Heat"}).DisplayTitle(); got != "Heat" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "Heat")
	}
}
