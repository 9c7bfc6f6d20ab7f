package collect

import (
	"fmt"
	"time"

	"sportswire/internal/config"
	"sportswire/internal/feed"
)

const demoLinkBase = "https://example.com/demo-article"

const demoSummary = "（デモ）これはテスト用のニュース要約です。実運用では実際の記事の概要が入ります。"

// Canned headlines per category so demo output looks like the real
// thing. Unlisted categories fall back to numbered placeholders.
var demoTitles = map[string][]string{
	"npb":     {"阪神 vs 巨人 きょう18:00 先発発表", "広島が接戦を制す、終盤で逆転", "パ・リーグ投手戦 注目ポイント"},
	"jleague": {"浦和 vs 川崎F プレビュー", "神戸、首位攻防戦を制す", "横浜FM 新戦力が躍動"},
	"keiba":   {"セントライト記念 展望", "重賞トリプルトレンド：注目馬3頭", "今週の追い切り評価"},
	"mlb":     {"ドジャース 大谷がマルチ安打", "パドレス ダルビッシュ復帰登板", "カブス 鈴木誠也が決勝打"},
}

// Demo produces synthetic items for every configured source without any
// network access. Timestamps are anchored at now and staggered seven
// minutes apart so the sort order is deterministic; the run salt is
// folded into each link so repeated demo runs read as new entries
// downstream. Demo entries skip the content filter.
func Demo(cfg *config.Config, perCategory int, salt string, now time.Time) []feed.Item {
	loc := cfg.Location()
	now = now.In(loc)

	var items []feed.Item
	for _, src := range cfg.Sources {
		titles := demoTitles[src.Category]
		if len(titles) == 0 {
			titles = []string{
				fmt.Sprintf("%s Demo News 1", cfg.CategoryName(src.Category)),
				fmt.Sprintf("%s Demo News 2", cfg.CategoryName(src.Category)),
			}
		}
		if perCategory < len(titles) {
			titles = titles[:perCategory]
		}
		for i, title := range titles {
			link := demoLinkBase
			if salt != "" {
				link = fmt.Sprintf("%s?run=%s", demoLinkBase, salt)
			}
			items = append(items, feed.Item{
				RawTitle:    title,
				Summary:     demoSummary,
				Link:        link,
				Published:   now.Add(-time.Duration(i) * 7 * time.Minute),
				Category:    src.Category,
				CTATarget:   src.TargetURL,
				SourceLabel: cfg.SourceName(src),
			})
		}
	}

	feed.SortByPublished(items)
	return items
}
