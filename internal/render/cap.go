package render

import "sportswire/internal/feed"

// CapPerCategory keeps the first n items encountered per category while
// preserving the global order. This runs once per output document: the
// combined feed caps every category at n within the full interleaving,
// a single-category feed caps its own category at n. It is not
// "top n globally then split".
func CapPerCategory(items []feed.Item, n int) []feed.Item {
	if n <= 0 {
		return nil
	}
	counts := make(map[string]int)
	capped := make([]feed.Item, 0, len(items))
	for _, it := range items {
		if counts[it.Category] >= n {
			continue
		}
		counts[it.Category]++
		capped = append(capped, it)
	}
	return capped
}
