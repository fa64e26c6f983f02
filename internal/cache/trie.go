// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"slices"
	"strings"
	"sync"
)

// trieNode is a node in the TitleIndex prefix tree.
type trieNode struct {
	children map[rune]*trieNode
	ids      []int // item IDs whose normalized title ends here, in insertion order
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// TitleIndex is a thread-safe, case-insensitive prefix tree mapping titles
// to item IDs. Several items may share a title (remakes), so each entry
// holds every ID inserted under it.
//
// Lookups are O(m) in the title length. Prefix searches return IDs ordered
// by normalized title, then by insertion order within a title.
type TitleIndex struct {
	mu   sync.RWMutex
	root *trieNode
	size int // distinct normalized titles
}

// NewTitleIndex creates an empty TitleIndex.
func NewTitleIndex() *TitleIndex {
	return &TitleIndex{root: newTrieNode()}
}

// NormalizeTitle is the key form used for matching: trimmed and lowercased.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Insert records id under title. Blank titles are ignored.
// Returns true if the title was not indexed before.
func (t *TitleIndex) Insert(title string, id int) bool {
	key := NormalizeTitle(title)
	if key == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range key {
		next := node.children[ch]
		if next == nil {
			next = newTrieNode()
			node.children[ch] = next
		}
		node = next
	}

	isNew := len(node.ids) == 0
	node.ids = append(node.ids, id)
	if isNew {
		t.size++
	}
	return isNew
}

// Lookup returns the IDs stored under exactly title, in insertion order.
func (t *TitleIndex) Lookup(title string) []int {
	key := NormalizeTitle(title)
	if key == "" {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(key)
	if node == nil || len(node.ids) == 0 {
		return nil
	}
	return slices.Clone(node.ids)
}

// Search returns up to limit IDs whose title starts with prefix.
// A non-positive limit returns every match.
func (t *TitleIndex) Search(prefix string, limit int) []int {
	key := NormalizeTitle(prefix)
	if key == "" {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(key)
	if node == nil {
		return nil
	}

	var out []int
	collect(node, limit, &out)
	return out
}

// Size returns the number of distinct normalized titles.
func (t *TitleIndex) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// find walks key from the root (must be called with lock held).
func (t *TitleIndex) find(key string) *trieNode {
	node := t.root
	for _, ch := range key {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

// collect appends IDs in lexical key order until limit is reached.
// Returns false once the limit is hit so callers can stop descending.
func collect(node *trieNode, limit int, out *[]int) bool {
	for _, id := range node.ids {
		if limit > 0 && len(*out) >= limit {
			return false
		}
		*out = append(*out, id)
	}

	keys := make([]rune, 0, len(node.children))
	for ch := range node.children {
		keys = append(keys, ch)
	}
	slices.Sort(keys)

	for _, ch := range keys {
		if !collect(node.children[ch], limit, out) {
			return false
		}
	}
	return limit <= 0 || len(*out) < limit
}
