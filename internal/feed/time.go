package feed

import (
	"time"

	"github.com/araddon/dateparse"
)

// NormalizeTime parses heterogeneous published/updated text into an
// instant in loc. Returns ok=false for empty or unparseable input; the
// caller decides the fallback (by policy, "now" in the same zone).
// Timestamps without zone information are taken as UTC.
func NormalizeTime(s string, loc *time.Location) (t time.Time, ok bool) {
	if s == "" {
		return time.Time{}, false
	}
	// dateparse has panicked on exotic input before; treat that as a
	// normal parse failure.
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.In(loc), true
}
