package assistant

import (
	"testing"

	"github.com/ganttline/ganttline/internal/dates"
	"github.com/ganttline/ganttline/internal/models"
)

func testContext() Context {
	sheets := []models.Sheet{
		{
			ID:   "s1",
			Name: "Main Project",
			Tasks: []models.Task{
				{ID: "t1", Name: "Build landing page", Status: models.StatusPlanned, Progress: 0},
				{ID: "t2", Name: "Write documentation", Status: models.StatusOngoing, Progress: 40},
			},
			CustomColumns: []models.CustomColumn{
				{ID: "c1", Name: "Priority", Visible: true},
			},
		},
		{ID: "s2", Name: "Marketing", Tasks: []models.Task{}},
	}
	return Context{
		Sheets:           sheets,
		ActiveSheetID:    "s1",
		ActiveSheetTasks: sheets[0].Tasks,
		CustomColumns:    sheets[0].CustomColumns,
	}
}

// interpretHeuristic runs the fallback path end to end: rule table plus
// normalization, the way the interpreter composes them.
func interpretHeuristic(input string, ctx Context) models.Action {
	return Normalize(parseHeuristic(input, ctx), ctx)
}

func TestHeuristicDefaultAddsTask(t *testing.T) {
	action := interpretHeuristic(`"Design homepage mockup"`, testContext())
	add, ok := action.(models.AddTask)
	if !ok {
		t.Fatalf("expected AddTask, got %T", action)
	}
	if add.Task.Name != "Design homepage mockup" {
		t.Fatalf("wrong name: %q", add.Task.Name)
	}
	if add.Task.Status != models.StatusPlanned || add.Task.Progress != 0 {
		t.Fatalf("defaults wrong: %+v", add.Task)
	}
	today := dates.Format(dates.Today())
	if add.Task.StartDate != today {
		t.Fatalf("startDate = %q, want today", add.Task.StartDate)
	}
	if add.Task.EndDate != dates.AddDays(today, 7) {
		t.Fatalf("endDate = %q, want today+7", add.Task.EndDate)
	}
	if add.Task.ID == "" {
		t.Fatal("task id must be synthesized")
	}
}

func TestHeuristicAddTaskSentence(t *testing.T) {
	// The fallback only extracts a name; dates and owner are a model-path
	// concern. The action just has to be a valid add.
	action := interpretHeuristic("Add task Build auth flow from Jan 15 to Jan 25 assigned to John", testContext())
	add, ok := action.(models.AddTask)
	if !ok {
		t.Fatalf("expected AddTask, got %T", action)
	}
	if add.Task.Name == "" {
		t.Fatal("name must be non-empty")
	}
}

func TestHeuristicTooShortNameIsDropped(t *testing.T) {
	if action := interpretHeuristic("x", testContext()); action != nil {
		t.Fatalf("expected nil, got %#v", action)
	}
}

func TestHeuristicMarkOngoing(t *testing.T) {
	action := interpretHeuristic("Mark Build landing page as ongoing", testContext())
	up, ok := action.(models.UpdateTask)
	if !ok {
		t.Fatalf("expected UpdateTask, got %T", action)
	}
	if up.TaskID != "t1" {
		t.Fatalf("taskID = %q, want t1", up.TaskID)
	}
	if up.Updates["status"] != models.StatusOngoing {
		t.Fatalf("status = %v", up.Updates["status"])
	}
	if up.Updates["progress"] != 10 {
		t.Fatalf("progress = %v, want 10 for a 0%% task", up.Updates["progress"])
	}
	if up.SheetID != "s1" {
		t.Fatalf("sheetID = %q, want active sheet", up.SheetID)
	}
}

func TestHeuristicMarkOngoingKeepsExistingProgress(t *testing.T) {
	action := interpretHeuristic("Write documentation is in progress", testContext())
	up, ok := action.(models.UpdateTask)
	if !ok {
		t.Fatalf("expected UpdateTask, got %T", action)
	}
	if up.Updates["progress"] != 40 {
		t.Fatalf("progress = %v, want existing 40", up.Updates["progress"])
	}
}

func TestHeuristicMarkCompleted(t *testing.T) {
	action := interpretHeuristic(`Mark "Build landing page" as done`, testContext())
	up, ok := action.(models.UpdateTask)
	if !ok {
		t.Fatalf("expected UpdateTask, got %T", action)
	}
	if up.Updates["status"] != models.StatusCompleted || up.Updates["progress"] != 100 {
		t.Fatalf("completion updates wrong: %v", up.Updates)
	}
}

func TestHeuristicUnresolvableStatusUpdateIsNoop(t *testing.T) {
	// Keyword fired but no task resolves: must end as a no-op, not as a
	// bogus new task from the default branch.
	if action := interpretHeuristic("Mark Zzzz as ongoing", testContext()); action != nil {
		t.Fatalf("expected nil, got %#v", action)
	}
}

func TestHeuristicDeleteTask(t *testing.T) {
	action := interpretHeuristic("delete Build landing page", testContext())
	del, ok := action.(models.DeleteTask)
	if !ok {
		t.Fatalf("expected DeleteTask, got %T", action)
	}
	if del.TaskID != "t1" {
		t.Fatalf("taskID = %q", del.TaskID)
	}
}

func TestHeuristicCreateSheet(t *testing.T) {
	action := interpretHeuristic("create sheet called Roadmap", testContext())
	cs, ok := action.(models.CreateSheet)
	if !ok {
		t.Fatalf("expected CreateSheet, got %T", action)
	}
	if cs.Sheet.Name != "Roadmap" {
		t.Fatalf("name = %q", cs.Sheet.Name)
	}
	if cs.Sheet.ID == "" || cs.Sheet.Tasks == nil || cs.Sheet.CustomColumns == nil {
		t.Fatalf("sheet not fully initialized: %+v", cs.Sheet)
	}
}

func TestHeuristicCreateSheetWithoutName(t *testing.T) {
	action := interpretHeuristic("new sheet", testContext())
	cs, ok := action.(models.CreateSheet)
	if !ok {
		t.Fatalf("expected CreateSheet, got %T", action)
	}
	if cs.Sheet.Name == "" {
		t.Fatal("placeholder name expected")
	}
}

func TestHeuristicRenameSheet(t *testing.T) {
	action := interpretHeuristic("rename sheet Marketing to Growth", testContext())
	rn, ok := action.(models.RenameSheet)
	if !ok {
		t.Fatalf("expected RenameSheet, got %T", action)
	}
	if rn.SheetID != "s2" || rn.Name != "Growth" {
		t.Fatalf("got %+v", rn)
	}
}

func TestHeuristicSwitchSheet(t *testing.T) {
	action := interpretHeuristic("switch to Marketing", testContext())
	sw, ok := action.(models.SwitchSheet)
	if !ok {
		t.Fatalf("expected SwitchSheet, got %T", action)
	}
	if sw.SheetID != "s2" {
		t.Fatalf("sheetID = %q", sw.SheetID)
	}
}

func TestHeuristicDeleteSheet(t *testing.T) {
	action := interpretHeuristic("delete sheet Marketing", testContext())
	ds, ok := action.(models.DeleteSheet)
	if !ok {
		t.Fatalf("expected DeleteSheet, got %T", action)
	}
	if ds.SheetID != "s2" {
		t.Fatalf("sheetID = %q", ds.SheetID)
	}
}

func TestHeuristicAddColumn(t *testing.T) {
	action := interpretHeuristic("Add column called Budget", testContext())
	ac, ok := action.(models.AddColumn)
	if !ok {
		t.Fatalf("expected AddColumn, got %T", action)
	}
	if ac.Name != "Budget" {
		t.Fatalf("name = %q", ac.Name)
	}
}

func TestHeuristicDeleteColumn(t *testing.T) {
	action := interpretHeuristic("delete column Priority", testContext())
	dc, ok := action.(models.DeleteColumn)
	if !ok {
		t.Fatalf("expected DeleteColumn, got %T", action)
	}
	if dc.ColumnID != "c1" {
		t.Fatalf("columnID = %q", dc.ColumnID)
	}
}
