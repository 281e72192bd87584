package dateutil

import (
	"strings"
	"time"
)

// layouts accepted when parsing dates from UI snapshots and rule documents,
// tried in order.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// Parse parses a date string in any accepted layout.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// ParseLenient parses a date string, returning the zero time for anything
// empty or unparseable. Callers treat the zero time as "not specified".
func ParseLenient(s string) time.Time {
	if strings.TrimSpace(s) == "" {
		return time.Time{}
	}
	t, err := Parse(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Format renders a date in the canonical snapshot layout.
func Format(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthsBetween returns the whole-month difference between two dates,
// ignoring days of month. Negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
