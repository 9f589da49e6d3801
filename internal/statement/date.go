package statement

import (
	"strings"
	"time"
)

// dateLayouts is tried in order; the first layout that parses wins.
// Numeric US layouts come before named-month ones because they dominate carrier exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"20060102",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2-Jan-06",
	"January 2006",
	"Jan 2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseDate parses a free-text date cell. The second result is false when no layout fits.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}

		y, m, d := t.Date()

		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}
