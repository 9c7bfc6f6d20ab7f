// Package render turns a capped item sequence plus channel metadata
// into a written RSS document. Entry formatting happens here: emoji
// titles, the call-to-action line, shortened summaries.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/feeds"

	"sportswire/internal/config"
	"sportswire/internal/feed"
	"sportswire/internal/logger"
	"sportswire/internal/metrics"
)

// hiddenTitle stands in for the channel title when the configuration
// suppresses it; an empty <title> would be invalid RSS.
const hiddenTitle = "\u200b"

// Channel is the per-output channel metadata.
type Channel struct {
	Title       string
	Link        string
	Description string
}

// Renderer formats items for one run. Salt is empty on live runs and a
// run-unique token on demo runs.
type Renderer struct {
	cfg  *config.Config
	salt string
}

func New(cfg *config.Config, salt string) *Renderer {
	return &Renderer{cfg: cfg, salt: salt}
}

// Render serializes the channel and items into an RSS 2.0 document.
// The channel carries no pubDate/lastBuildDate: a byte-identical run
// must produce a byte-identical document, or downstream dedup breaks.
func (r *Renderer) Render(ch Channel, items []feed.Item) (string, error) {
	title := ch.Title
	if r.cfg.HideTitle {
		title = hiddenTitle
	}
	f := &feeds.Feed{
		Id:          ch.Link,
		Title:       title,
		Link:        &feeds.Link{Href: ch.Link, Rel: "self"},
		Description: ch.Description,
	}
	for _, it := range items {
		f.Items = append(f.Items, r.entry(it))
	}

	rss := (&feeds.Rss{Feed: f}).RssFeed()
	rss.Language = "ja"
	return feeds.ToXML(rss)
}

// WriteFile renders and writes one output document, creating the
// directory first.
func (r *Renderer) WriteFile(path string, ch Channel, items []feed.Item) error {
	doc, err := r.Render(ch, items)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	metrics.Global.IncrementFeedsWritten()
	logger.Info("wrote feed", "path", path, "items", len(items))
	return nil
}

// entry builds one rendered feed entry from an item.
func (r *Renderer) entry(it feed.Item) *feeds.Item {
	return &feeds.Item{
		Id:          feed.GUID(it.Link, it.RawTitle, r.salt),
		IsPermaLink: "false",
		Title:       r.displayTitle(it),
		Link:        &feeds.Link{Href: it.Link},
		Description: r.description(it),
		Created:     it.Published,
	}
}

func (r *Renderer) displayTitle(it feed.Item) string {
	return fmt.Sprintf("%s [%s] %s",
		r.cfg.CategoryEmoji(it.Category),
		r.cfg.CategoryName(it.Category),
		feed.Shorten(it.RawTitle, r.cfg.TitleMaxRunes))
}

// description composes the entry body: the call-to-action always
// present and always first, then the summary (dropped when empty),
// then the article pointer. URLs are wrapped in angle brackets so the
// downstream chat client does not expand link previews.
func (r *Renderer) description(it feed.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s → <%s>", r.cfg.CategoryEmoji(it.Category), r.cfg.CTAText, it.CTATarget)
	if summary := feed.Shorten(it.Summary, r.cfg.SummaryMaxRunes); summary != "" {
		b.WriteString("\n\n")
		b.WriteString(summary)
	}
	fmt.Fprintf(&b, "\n\n🔗 記事（%s）: <%s>", it.SourceLabel, it.Link)
	return b.String()
}
