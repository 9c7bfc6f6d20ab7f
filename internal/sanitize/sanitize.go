// Package sanitize strips markup from upstream summaries. RSS
// descriptions routinely carry HTML; the rendered entries must not.
package sanitize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text returns the plain-text content of an HTML fragment with
// whitespace collapsed to single spaces. Input without markup passes
// through with only whitespace normalization. On a parser failure the
// original string is returned trimmed rather than lost.
func Text(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
