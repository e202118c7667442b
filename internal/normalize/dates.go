package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// pivotYear is the two-digit year cutoff: years below it are 20xx,
// years at or above it are 19xx.
const pivotYear = 50

// genericDateLayouts are tried when the input is not a slash-separated
// day/month/year string. Slash layouts are deliberately absent: a
// three-part slash string that fails day/month/year interpretation is
// unparsable rather than silently reinterpreted as month/day/year.
var genericDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate converts a date string into a calendar date. Strings that split
// into exactly three slash-separated parts are interpreted as day/month/year
// with two-digit years resolved via the pivot-year rule; anything else falls
// back to a list of generic layouts. The boolean result reports success;
// ParseDate never returns an error. This function is the single source of
// truth for date comparisons and month bucketing.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	parts := strings.Split(s, "/")
	if len(parts) == 3 {
		day := zeroPad(strings.TrimSpace(parts[0]))
		month := zeroPad(strings.TrimSpace(parts[1]))
		year := strings.TrimSpace(parts[2])

		if len(year) == 2 {
			if n, err := strconv.Atoi(year); err == nil {
				if n < pivotYear {
					year = "20" + year
				} else {
					year = "19" + year
				}
			}
		}

		t, err := time.Parse("2006-01-02", fmt.Sprintf("%s-%s-%s", year, month, day))
		return t, err == nil
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// MonthKey returns the YYYY-MM bucket key for a parsed date
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthOf parses a date string and returns its YYYY-MM bucket key.
// Unparsable dates yield ok=false and must be skipped by month-bucketed
// aggregates.
func MonthOf(date string) (string, bool) {
	t, ok := ParseDate(date)
	if !ok {
		return "", false
	}
	return MonthKey(t), true
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
