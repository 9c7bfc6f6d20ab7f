package render

import (
	"testing"
	"time"

	"sportswire/internal/feed"
)

func seq(categories ...string) []feed.Item {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := make([]feed.Item, len(categories))
	for i, c := range categories {
		items[i] = feed.Item{
			RawTitle:  c + "-" + string(rune('a'+i)),
			Category:  c,
			Published: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

func TestCapPerCategoryCountsIndependently(t *testing.T) {
	items := seq("npb", "keiba", "npb", "npb", "keiba", "npb")
	capped := CapPerCategory(items, 2)

	counts := map[string]int{}
	for _, it := range capped {
		counts[it.Category]++
	}
	if counts["npb"] != 2 || counts["keiba"] != 2 {
		t.Fatalf("got counts %v, want 2 per category", counts)
	}
}

func TestCapPerCategoryPreservesInterleaving(t *testing.T) {
	items := seq("npb", "keiba", "npb", "keiba")
	capped := CapPerCategory(items, 2)
	if len(capped) != 4 {
		t.Fatalf("got %d items, want 4", len(capped))
	}
	for i := range capped {
		if capped[i].RawTitle != items[i].RawTitle {
			t.Errorf("position %d: got %q, want %q (order must be preserved)",
				i, capped[i].RawTitle, items[i].RawTitle)
		}
	}
}

func TestCapPerCategoryTakesFirstEncountered(t *testing.T) {
	items := seq("npb", "npb", "npb")
	capped := CapPerCategory(items, 2)
	if len(capped) != 2 {
		t.Fatalf("got %d items, want 2", len(capped))
	}
	if capped[0].RawTitle != items[0].RawTitle || capped[1].RawTitle != items[1].RawTitle {
		t.Error("cap must keep the first items in input order, not the last")
	}
}

func TestCapPerCategoryZeroYieldsNothing(t *testing.T) {
	if got := CapPerCategory(seq("npb"), 0); len(got) != 0 {
		t.Errorf("cap 0 returned %d items", len(got))
	}
}
