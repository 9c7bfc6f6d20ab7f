// Package collect turns configured sources into a deduplicated,
// filtered, time-ordered item sequence.
package collect

import (
	"time"

	"sportswire/internal/config"
	"sportswire/internal/feed"
	"sportswire/internal/fetch"
	"sportswire/internal/filter"
	"sportswire/internal/logger"
	"sportswire/internal/metrics"
	"sportswire/internal/sanitize"
)

// Fetcher retrieves the raw entries of one source URL. The production
// implementation is fetch.Client; tests inject fakes.
type Fetcher interface {
	Fetch(url string) ([]fetch.Entry, error)
}

// Collector runs one collection pass. The dedup set lives on the value,
// so "one run, one set" is explicit: a fresh Collector per run.
type Collector struct {
	cfg     *config.Config
	fetcher Fetcher
	filter  *filter.Filter
	loc     *time.Location
	seen    map[string]struct{}
	now     func() time.Time
}

func New(cfg *config.Config, fetcher Fetcher, f *filter.Filter) *Collector {
	return &Collector{
		cfg:     cfg,
		fetcher: fetcher,
		filter:  f,
		loc:     cfg.Location(),
		seen:    make(map[string]struct{}),
		now:     time.Now,
	}
}

// Run fetches every source, filters and dedups entries across all of
// them, and returns the items sorted newest-first. A failing source is
// logged and skipped; it never aborts the pass.
func (c *Collector) Run() []feed.Item {
	var items []feed.Item

	for _, src := range c.cfg.Sources {
		entries, err := c.fetcher.Fetch(src.URL)
		if err != nil {
			logger.Warn("source fetch failed, skipping", "url", src.URL, "error", err)
			metrics.Global.IncrementSourcesFailed()
			continue
		}
		logger.Debug("fetched source", "url", src.URL, "entries", len(entries))

		for _, e := range entries {
			if item, ok := c.convert(src, e); ok {
				items = append(items, item)
			}
		}
	}

	feed.SortByPublished(items)
	logger.Info("collection pass done", "items", len(items), "sources", len(c.cfg.Sources))
	return items
}

// convert applies filtering, deduplication and normalization to one raw
// entry. The dedup key is (link, rawTitle), shared across all sources.
func (c *Collector) convert(src config.Source, e fetch.Entry) (feed.Item, bool) {
	metrics.Global.IncrementEntriesProcessed()

	title := sanitize.Text(e.Title)
	summary := sanitize.Text(e.Summary)

	if !c.filter.Relevant(src.Category, title, summary) {
		metrics.Global.IncrementEntriesFilteredOut()
		return feed.Item{}, false
	}

	link := e.Link
	if link == "" {
		link = src.URL
	}
	key := feed.DedupKey(link, title)
	if _, dup := c.seen[key]; dup {
		metrics.Global.IncrementDuplicatesFiltered()
		logger.Debug("duplicate entry suppressed", "title", title)
		return feed.Item{}, false
	}
	c.seen[key] = struct{}{}

	published, ok := feed.NormalizeTime(e.Published, c.loc)
	if !ok {
		published = c.now().In(c.loc)
		metrics.Global.IncrementTimestampFallbacks()
	}

	return feed.Item{
		RawTitle:    title,
		Summary:     summary,
		Link:        link,
		Published:   published,
		Category:    src.Category,
		CTATarget:   src.TargetURL,
		SourceLabel: c.cfg.SourceName(src),
	}, true
}
