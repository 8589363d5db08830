package assistant

import (
	"github.com/ganttline/ganttline/internal/models"
)

// Context is the immutable document snapshot the interpreter reads. The
// interpreter never mutates it; all mutation happens when the caller applies
// the returned Action to its own store.
type Context struct {
	Sheets           []models.Sheet
	ActiveSheetID    string
	ActiveSheetTasks []models.Task
	CustomColumns    []models.CustomColumn
}

// ContextFromSnapshot captures an interpreter context from a document snapshot
func ContextFromSnapshot(snap *models.Snapshot) Context {
	ctx := Context{
		Sheets:        snap.Sheets,
		ActiveSheetID: snap.ActiveSheetID,
	}
	if active := snap.ActiveSheet(); active != nil {
		ctx.ActiveSheetTasks = active.Tasks
		ctx.CustomColumns = active.CustomColumns
	}
	return ctx
}

// ActiveSheetName returns the active sheet's display name, defaulting like
// the seeded document does
func (c Context) ActiveSheetName() string {
	for _, s := range c.Sheets {
		if s.ID == c.ActiveSheetID {
			return s.Name
		}
	}
	if len(c.Sheets) > 0 {
		return c.Sheets[0].Name
	}
	return "Main Project"
}
