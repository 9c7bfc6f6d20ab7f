package feed

import (
	"testing"
	"time"
)

func jst(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load Asia/Tokyo: %v", err)
	}
	return loc
}

func TestNormalizeTimeEmptyFailsFast(t *testing.T) {
	if _, ok := NormalizeTime("", jst(t)); ok {
		t.Error("empty input should not normalize")
	}
}

func TestNormalizeTimeGarbageFails(t *testing.T) {
	for _, s := range []string{"not a date", "13月32日", "////"} {
		if got, ok := NormalizeTime(s, jst(t)); ok {
			t.Errorf("NormalizeTime(%q) unexpectedly ok: %v", s, got)
		}
	}
}

func TestNormalizeTimeNaiveTreatedAsUTC(t *testing.T) {
	loc := jst(t)
	got, ok := NormalizeTime("2024-03-01 12:00:00", loc)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := time.Date(2024, 3, 1, 21, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v (naive timestamps are UTC)", got, want)
	}
	if got.Location() != loc {
		t.Errorf("result not in target zone: %v", got.Location())
	}
}

func TestNormalizeTimeKeepsExplicitZone(t *testing.T) {
	loc := jst(t)
	got, ok := NormalizeTime("Fri, 01 Mar 2024 18:30:00 +0900", loc)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := time.Date(2024, 3, 1, 18, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortByPublishedDescendingStable(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []Item{
		{RawTitle: "old", Published: base.Add(-time.Hour)},
		{RawTitle: "tie-a", Published: base},
		{RawTitle: "new", Published: base.Add(time.Hour)},
		{RawTitle: "tie-b", Published: base},
	}
	SortByPublished(items)

	want := []string{"new", "tie-a", "tie-b", "old"}
	for i, w := range want {
		if items[i].RawTitle != w {
			t.Fatalf("position %d: got %q, want %q", i, items[i].RawTitle, w)
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i].Published.After(items[i-1].Published) {
			t.Errorf("published not non-increasing at %d", i)
		}
	}
}
