package feed

import "strings"

const ellipsis = '…'

// Shorten truncates s to at most max runes, appending a single ellipsis
// rune when anything was cut. Rune counting matters here: most of the
// content is Japanese. Already-short input comes back unchanged.
func Shorten(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" || max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	head := strings.TrimRight(string(r[:max-1]), " \t\n")
	return head + string(ellipsis)
}
