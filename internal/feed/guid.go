package feed

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// keySep joins the GUID components. Chosen as a sequence that does not
// occur in article links or titles; the concatenation scheme is a known
// fragility but cannot change without re-posting every entry downstream.
const keySep = "||"

// GUID returns the stable hex identifier for an entry. The same
// (link, title, salt) always hashes to the same GUID, which is what lets
// the downstream bot skip entries it has already posted. Salt is folded
// in only when non-empty (demo runs), so live GUIDs stay stable.
func GUID(link, title, salt string) string {
	parts := []string{link, title}
	if salt != "" {
		parts = append(parts, salt)
	}
	sum := sha1.Sum([]byte(strings.Join(parts, keySep)))
	return hex.EncodeToString(sum[:])
}

// DedupKey is the run-scoped duplicate signature for a raw entry.
func DedupKey(link, title string) string {
	return link + keySep + title
}
