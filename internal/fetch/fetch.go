// Package fetch adapts gofeed into the collector's view of a source:
// a URL that yields raw entries. Fetch failures are the caller's policy
// decision; a failed source contributes nothing to the run.
package fetch

import (
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// Entry is one raw feed entry before any processing. Any field may be
// empty; the published text carries whatever the feed said, with the
// updated text as fallback.
type Entry struct {
	Title     string
	Link      string
	Summary   string
	Published string
}

// Client fetches and parses one RSS/Atom feed per call.
type Client struct {
	parser *gofeed.Parser
}

func NewClient(timeout time.Duration) *Client {
	p := gofeed.NewParser()
	if timeout > 0 {
		p.Client = &http.Client{Timeout: timeout}
	}
	return &Client{parser: p}
}

// Fetch downloads and parses the feed at url.
func (c *Client) Fetch(url string) ([]Entry, error) {
	feed, err := c.parser.ParseURL(url)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		published := item.Published
		if published == "" {
			published = item.Updated
		}
		entries = append(entries, Entry{
			Title:     item.Title,
			Link:      item.Link,
			Summary:   item.Description,
			Published: published,
		})
	}
	return entries, nil
}
