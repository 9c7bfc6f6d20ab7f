// Package feed holds the core item model and the pure helpers the
// pipeline is built from: identity hashing, display shortening and
// timestamp normalization.
package feed

import (
	"sort"
	"time"
)

// Item is a single collected news entry. Construct once, never mutate;
// within one run no two items share the (Link, RawTitle) pair.
type Item struct {
	RawTitle    string
	Summary     string
	Link        string
	Published   time.Time
	Category    string
	CTATarget   string
	SourceLabel string
}

// SortByPublished orders items newest-first. The sort is stable so items
// with equal timestamps keep their encounter order.
func SortByPublished(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})
}
