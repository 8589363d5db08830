package resolver

import (
	"testing"

	"github.com/ganttline/ganttline/internal/models"
)

func sheets(names ...string) []models.Sheet {
	out := make([]models.Sheet, len(names))
	for i, n := range names {
		out[i] = models.Sheet{ID: n + "-id", Name: n}
	}
	return out
}

func tasks(names ...string) []models.Task {
	out := make([]models.Task, len(names))
	for i, n := range names {
		out[i] = models.Task{ID: n + "-id", Name: n}
	}
	return out
}

func TestSheetExactMatchOutranksPartial(t *testing.T) {
	// "Marketing Plan" contains "Marketing" as a substring and sits first,
	// but the exact match must still win.
	ss := sheets("Marketing Plan", "Marketing")
	got := Sheet(ss, "marketing")
	if got == nil || got.Name != "Marketing" {
		t.Fatalf("expected exact match 'Marketing', got %+v", got)
	}
}

func TestSheetSubstringBothDirections(t *testing.T) {
	ss := sheets("Main Project")

	// candidate contains search term
	if got := Sheet(ss, "main"); got == nil || got.Name != "Main Project" {
		t.Fatalf("candidate-contains-search failed: %+v", got)
	}

	// search term contains candidate
	if got := Sheet(ss, "the Main Project sheet"); got == nil || got.Name != "Main Project" {
		t.Fatalf("search-contains-candidate failed: %+v", got)
	}
}

func TestSheetTokenOverlap(t *testing.T) {
	ss := sheets("Q3 Marketing Launch")
	got := Sheet(ss, "launch schedule")
	if got == nil || got.Name != "Q3 Marketing Launch" {
		t.Fatalf("token overlap failed: %+v", got)
	}
}

func TestSheetNoMatch(t *testing.T) {
	ss := sheets("Main Project")
	if got := Sheet(ss, "zzz"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if got := Sheet(ss, ""); got != nil {
		t.Fatalf("expected nil for empty search, got %+v", got)
	}
	if got := Sheet(nil, "anything"); got != nil {
		t.Fatalf("expected nil for empty collection, got %+v", got)
	}
}

func TestTaskTokenOverlapRequiresLongTokens(t *testing.T) {
	ts := tasks("Fix API bug")
	// "api" and "fix" are under the 4-char task token minimum, "tests" is not
	if got := Task(ts, "api fix"); got != nil {
		t.Fatalf("short tokens should not match, got %+v", got)
	}
}

func TestTaskFuzzyFromSentence(t *testing.T) {
	ts := tasks("Build landing page", "Write docs")
	got := Task(ts, "Mark Build landing page as ongoing")
	if got == nil || got.Name != "Build landing page" {
		t.Fatalf("expected 'Build landing page', got %+v", got)
	}
}

func TestColumnSkipsTokenStage(t *testing.T) {
	cols := []models.CustomColumn{{ID: "c1", Name: "Priority"}}

	if got := Column(cols, "priority"); got == nil || got.ID != "c1" {
		t.Fatalf("exact column match failed: %+v", got)
	}
	// token-only overlap must not resolve columns
	if got := Column(cols, "xyz priority-ish-nonsense"); got == nil {
		// substring stage still applies: "xyz priority-ish-nonsense"
		// contains "priority"... so this does match
		t.Fatalf("substring stage should have matched")
	}
	if got := Column(cols, "prio level"); got != nil {
		t.Fatalf("expected nil without substring containment, got %+v", got)
	}
}

func TestResolutionIsDeterministic(t *testing.T) {
	ts := tasks("Design review", "Design system", "Design docs")
	first := Task(ts, "design")
	for i := 0; i < 5; i++ {
		if got := Task(ts, "design"); got == nil || got.ID != first.ID {
			t.Fatalf("resolution not stable: %+v vs %+v", got, first)
		}
	}
	// ties resolve by collection order
	if first.Name != "Design review" {
		t.Fatalf("expected first declared task to win, got %q", first.Name)
	}
}
