// Package dates is the single loose-date parser for entry dates.
//
// Entry dates are display-formatted strings captured over the lifetime of the
// app, so several textual formats coexist in stored data. Every call site
// that needs a calendar date goes through Parse and applies one consistent
// policy for unparseable values: excluded from time bucketing, sorted last in
// ordering operations.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fallback chain, tried in order. Strict ISO forms first, then the display
// format the capture flow historically produced, then day/month/year with a
// 4-digit year.
var layouts = []string{
	time.RFC3339,
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

var dayMonthYear = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$`)

// Parse resolves a display-formatted date string to a calendar date.
// The boolean is false when the value matches none of the known formats.
func Parse(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}

	if m := dayMonthYear.FindStringSubmatch(trimmed); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			// Reject normalized overflows such as 31/2/2024.
			if t.Day() == day && int(t.Month()) == month {
				return t, true
			}
		}
	}

	return time.Time{}, false
}

// DayKey returns the YYYY-MM-DD bucket key for t.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayLabel returns the short display form of t ("Oct 24").
func DayLabel(t time.Time) string {
	return t.Format("Jan 2")
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
