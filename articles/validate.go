package articles

import (
	"regexp"
	"time"
)

// iso8601Pattern matches date strings of the form 2006-01-02T15:04:05Z with
// optional milliseconds. A trailing Z is required; offsets are rejected.
var iso8601Pattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{3})?Z$`)

// IsValidDate reports whether s is a strict ISO-8601 UTC timestamp. The
// pattern gate catches shape errors; the parse catches impossible dates like
// a 13th month.
func IsValidDate(s string) bool {
	if !iso8601Pattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
