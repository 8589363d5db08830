package dates

import (
	"regexp"
	"strings"
	"time"
)

// Canonical is the only date layout the rest of the system stores
const Canonical = "2006-01-02"

var canonicalRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Layouts tried when the input is not already canonical. Year-less layouts
// are filled in with the current year.
var parseLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC3339,
}

var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"01/02",
	"1/2",
}

// Today returns the start of the current day
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Format renders a time in canonical form
func Format(t time.Time) string {
	return t.Format(Canonical)
}

// AddDays returns a canonical date string n days after the given canonical
// date. Unparseable input counts as today.
func AddDays(date string, n int) string {
	t, err := time.ParseInLocation(Canonical, date, time.Local)
	if err != nil {
		t = Today()
	}
	return Format(t.AddDate(0, 0, n))
}

// Before reports whether canonical date a is strictly before b
func Before(a, b string) bool {
	ta, errA := time.ParseInLocation(Canonical, a, time.Local)
	tb, errB := time.ParseInLocation(Canonical, b, time.Local)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Before(tb)
}

// Normalize converts a free-form date expression to canonical YYYY-MM-DD.
// It never fails: anything unparseable becomes today.
//
// Order matters and must be kept: a string that parses as a real calendar
// date wins over the keyword rules, even if it also contains "today".
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return Format(Today())
	}

	// Already canonical
	if canonicalRegex.MatchString(text) {
		return text
	}

	// General parsing
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return Format(t)
		}
	}
	for _, layout := range yearlessLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			t = time.Date(Today().Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
			return Format(t)
		}
	}

	// Relative keywords
	lower := strings.ToLower(text)
	today := Today()
	switch {
	case strings.Contains(lower, "today"):
		return Format(today)
	case strings.Contains(lower, "tomorrow"):
		return Format(today.AddDate(0, 0, 1))
	case strings.Contains(lower, "next week"):
		return Format(today.AddDate(0, 0, 7))
	}

	return Format(today)
}
