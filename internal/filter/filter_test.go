package filter

import (
	"testing"

	"sportswire/internal/config"
)

func compile(t *testing.T, categories map[string]config.Category) *Filter {
	t.Helper()
	f, err := Compile(categories)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return f
}

func TestNoRulesAcceptsEverything(t *testing.T) {
	f := compile(t, map[string]config.Category{
		"mlb": {Name: "MLB"},
	})
	if !f.Relevant("mlb", "完全に無関係な記事", "") {
		t.Error("category without rules must accept everything")
	}
	if !f.Relevant("unknown", "anything", "at all") {
		t.Error("unknown category must default to accept")
	}
}

func TestModeOffAcceptsEverything(t *testing.T) {
	f := compile(t, map[string]config.Category{
		"npb": {Filter: &config.FilterRules{Mode: "off", Include: []string{"阪神"}}},
	})
	if !f.Relevant("npb", "株価が上昇", "") {
		t.Error("mode off must ignore patterns")
	}
}

func TestMatchOnlyRequiresInclusion(t *testing.T) {
	f := compile(t, map[string]config.Category{
		"npb": {Filter: &config.FilterRules{Mode: "match_only", Include: []string{"阪神|巨人"}}},
	})
	if f.Relevant("npb", "サッカー日本代表の試合速報", "") {
		t.Error("no inclusion match must reject")
	}
}

func TestFixtureBackstop(t *testing.T) {
	f := compile(t, map[string]config.Category{
		"npb": {Filter: &config.FilterRules{Mode: "match_only", Include: []string{"阪神|巨人"}}},
	})
	if !f.Relevant("npb", "阪神 vs 巨人 スタメン発表", "") {
		t.Error("fixture-context title must pass")
	}
	// Inclusion pattern matches (阪神) but there is no fixture context:
	// stock news about the railway company, not match coverage.
	if f.Relevant("npb", "阪神電鉄、株価が上昇", "") {
		t.Error("non-fixture title must be rejected by the backstop")
	}
}

func TestExclusionWins(t *testing.T) {
	f := compile(t, map[string]config.Category{
		"npb": {Filter: &config.FilterRules{
			Mode:    "match_only",
			Include: []string{"阪神"},
			Exclude: []string{"キャンペーン"},
		}},
	})
	if f.Relevant("npb", "阪神 vs 巨人戦 観戦キャンペーン実施", "") {
		t.Error("exclusion pattern must reject even with inclusion and fixture context")
	}
}

func TestRaceBackstop(t *testing.T) {
	f := compile(t, map[string]config.Category{
		"keiba": {Filter: &config.FilterRules{Mode: "match_only", Include: []string{"重賞|記念"}}},
	})
	if !f.Relevant("keiba", "セントライト記念 出走馬確定", "") {
		t.Error("race-context title must pass")
	}
	if f.Relevant("keiba", "記念グッズ売り場が拡張", "") {
		t.Error("no race context must be rejected by the backstop")
	}
}

func TestSummaryCountsTowardMatching(t *testing.T) {
	f := compile(t, map[string]config.Category{
		"npb": {Filter: &config.FilterRules{Mode: "match_only", Include: []string{"巨人"}}},
	})
	if !f.Relevant("npb", "きょうのハイライト", "巨人が逆転勝ち") {
		t.Error("summary text must participate in pattern matching")
	}
}

func TestInclusionIsCaseInsensitive(t *testing.T) {
	f := compile(t, map[string]config.Category{
		"mlb": {Filter: &config.FilterRules{Mode: "match_only", Include: []string{"dodgers"}}},
	})
	if !f.Relevant("mlb", "Dodgers highlight: Ohtani multi-hit game", "") {
		t.Error("pattern matching must be case-insensitive")
	}
}

func TestCompileRejectsBadPattern(t *testing.T) {
	_, err := Compile(map[string]config.Category{
		"npb": {Filter: &config.FilterRules{Mode: "match_only", Include: []string{"("}}},
	})
	if err == nil {
		t.Error("invalid regex must fail at compile time, not per entry")
	}
}
