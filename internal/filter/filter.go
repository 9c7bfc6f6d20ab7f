// Package filter decides whether a raw entry is topically relevant for
// its category. Configured include/exclude patterns run first, then a
// fixed context backstop that suppresses generic posts (club finances,
// stock news) which happen to satisfy a loose inclusion pattern.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"sportswire/internal/config"
)

// predicate inspects the lower-cased search text (title + summary) and
// reports whether the entry may pass. Predicates run in order; the first
// rejection wins.
type predicate func(text string) bool

type categoryFilter struct {
	chain []predicate
}

// Filter holds the compiled per-category rule chains for one run.
type Filter struct {
	byCategory map[string]categoryFilter
}

// Fixture/result context required for team-sport categories: an entry
// must read like match coverage, not like arbitrary club news.
var fixtureKeywords = []string{
	"vs", "対", "戦", "試合", "スタメン", "先発", "速報", "結果",
	"スコア", "ハイライト", "勝", "敗", "逆転", "延長", "完封",
	"サヨナラ", "得点", "ゴール", "lineup", "match", "score", "highlight",
}

// Race context required for the racing category.
var raceKeywords = []string{
	"出走", "オッズ", "払戻", "確定", "レース", "重賞", "予想",
	"追い切り", "枠順", "entries", "odds", "payout", "results",
}

// contextKeywords binds the fixed backstop to the known category set.
// Categories outside this table get no backstop.
var contextKeywords = map[string][]string{
	"npb":     fixtureKeywords,
	"jleague": fixtureKeywords,
	"mlb":     fixtureKeywords,
	"keiba":   raceKeywords,
}

// Compile builds the run's filter from the per-category rules. Patterns
// are compiled once here, never per entry.
func Compile(categories map[string]config.Category) (*Filter, error) {
	f := &Filter{byCategory: make(map[string]categoryFilter, len(categories))}
	for key, cat := range categories {
		rules := cat.Filter
		if rules == nil || rules.Mode == "" || rules.Mode == "off" {
			// No chain: everything passes.
			f.byCategory[key] = categoryFilter{}
			continue
		}

		var chain []predicate
		if len(rules.Include) > 0 {
			include, err := compilePatterns(rules.Include)
			if err != nil {
				return nil, fmt.Errorf("category %q include: %w", key, err)
			}
			chain = append(chain, func(text string) bool {
				return anyMatch(include, text)
			})
		}
		if len(rules.Exclude) > 0 {
			exclude, err := compilePatterns(rules.Exclude)
			if err != nil {
				return nil, fmt.Errorf("category %q exclude: %w", key, err)
			}
			chain = append(chain, func(text string) bool {
				return !anyMatch(exclude, text)
			})
		}
		if keywords, ok := contextKeywords[key]; ok {
			chain = append(chain, func(text string) bool {
				return containsAny(text, keywords)
			})
		}
		f.byCategory[key] = categoryFilter{chain: chain}
	}
	return f, nil
}

// Relevant reports whether an entry belongs in its category's feed.
// Title and summary are combined into one case-insensitive search text.
func (f *Filter) Relevant(category, title, summary string) bool {
	cf, ok := f.byCategory[category]
	if !ok {
		return true
	}
	text := strings.ToLower(strings.TrimSpace(title + " " + summary))
	for _, pred := range cf.chain {
		if !pred(text) {
			return false
		}
	}
	return true
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// shortWord matches short ASCII keywords ("vs") on word boundaries so
// they cannot fire inside unrelated words.
var shortWord = map[string]*regexp.Regexp{}

func init() {
	for _, keywords := range contextKeywords {
		for _, k := range keywords {
			if len(k) <= 3 && k[0] < 0x80 {
				shortWord[k] = regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`)
			}
		}
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		k = strings.ToLower(k)
		if re, ok := shortWord[k]; ok {
			if re.MatchString(text) {
				return true
			}
			continue
		}
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
