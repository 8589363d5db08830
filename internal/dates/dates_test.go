package dates

import (
	"regexp"
	"testing"
	"time"
)

var canonical = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestNormalizeCanonicalPassthrough(t *testing.T) {
	if got := Normalize("2025-03-01"); got != "2025-03-01" {
		t.Fatalf("canonical input must pass through unchanged, got %q", got)
	}
}

func TestNormalizeKeywords(t *testing.T) {
	today := Today()

	if got := Normalize("today"); got != Format(today) {
		t.Fatalf("today: got %q, want %q", got, Format(today))
	}
	if got := Normalize("tomorrow"); got != Format(today.AddDate(0, 0, 1)) {
		t.Fatalf("tomorrow: got %q, want %q", got, Format(today.AddDate(0, 0, 1)))
	}
	if got := Normalize("next week"); got != Format(today.AddDate(0, 0, 7)) {
		t.Fatalf("next week: got %q, want %q", got, Format(today.AddDate(0, 0, 7)))
	}
}

func TestNormalizeGarbageFallsBackToToday(t *testing.T) {
	if got := Normalize("garbage-xyz"); got != Format(Today()) {
		t.Fatalf("garbage: got %q, want today", got)
	}
	if got := Normalize(""); got != Format(Today()) {
		t.Fatalf("empty: got %q, want today", got)
	}
}

func TestNormalizeAlwaysCanonicalShape(t *testing.T) {
	inputs := []string{
		"2025-03-01", "Jan 15", "January 15", "1/15/2026", "15 Jan 2026",
		"tomorrow", "next week", "whenever", "", "due sometime today maybe",
	}
	for _, in := range inputs {
		if got := Normalize(in); !canonical.MatchString(got) {
			t.Errorf("Normalize(%q) = %q, not canonical", in, got)
		}
	}
}

func TestNormalizeNamedMonth(t *testing.T) {
	got := Normalize("Jan 15")
	want := Format(time.Date(Today().Year(), time.January, 15, 0, 0, 0, 0, time.Local))
	if got != want {
		t.Fatalf("Jan 15: got %q, want %q", got, want)
	}
}

func TestAddDays(t *testing.T) {
	if got := AddDays("2025-01-15", 7); got != "2025-01-22" {
		t.Fatalf("AddDays: got %q", got)
	}
	// month rollover
	if got := AddDays("2025-01-28", 7); got != "2025-02-04" {
		t.Fatalf("AddDays rollover: got %q", got)
	}
}

func TestBefore(t *testing.T) {
	if !Before("2025-01-10", "2025-01-15") {
		t.Fatal("expected 01-10 before 01-15")
	}
	if Before("2025-01-15", "2025-01-15") {
		t.Fatal("equal dates are not before")
	}
	if Before("2025-01-20", "2025-01-15") {
		t.Fatal("later date is not before")
	}
}
