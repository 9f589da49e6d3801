package statement

import (
	"strings"
	"time"
)

// periodHints are substrings that mark a column as a candidate for the batch period.
var periodHints = []string{"period", "month", "date", "effective", "written"}

// PeriodLayout is the format of ImportBatch.PeriodMonth.
const PeriodLayout = "2006-01"

// InferPeriod picks the representative period of a batch: the earliest date parsed from any
// period-like column of any row. Earliest wins so the original effective period is preferred
// over administrative entry dates. With no parseable date, now is used.
func InferPeriod(rows []Row, now time.Time) time.Time {
	var (
		earliest time.Time
		found    bool
	)

	for _, row := range rows {
		for _, h := range row.Header {
			if !isPeriodColumn(h) {
				continue
			}

			t, ok := ParseDate(row.Values[h])
			if !ok {
				continue
			}

			if !found || t.Before(earliest) {
				earliest = t
				found = true
			}
		}
	}

	if !found {
		return now
	}

	return earliest
}

func isPeriodColumn(header string) bool {
	h := strings.ToLower(header)

	for _, hint := range periodHints {
		if strings.Contains(h, hint) {
			return true
		}
	}

	return false
}
