package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Task statuses
const (
	StatusPlanned   = "planned"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Task represents one row of a sheet's timeline grid
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"` // YYYY-MM-DD, empty if unset
	EndDate   string `json:"endDate"`   // YYYY-MM-DD, empty if unset
	Status    string `json:"status"`    // planned, ongoing, completed
	Progress  int    `json:"progress"`  // 0-100
	Owner     string `json:"owner,omitempty"`

	// Custom column values, keyed by the derived field key "custom_<columnID>".
	// Deleting a column does not cascade here; stale keys are kept on purpose
	// so a recreated column with the same name can pick them up.
	Custom map[string]string `json:"custom,omitempty"`
}

// CustomColumn is a user-defined extra field attached to every task in a sheet
type CustomColumn struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// Sheet is a named collection of tasks plus custom columns (a spreadsheet tab)
type Sheet struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Tasks         []Task         `json:"tasks"`
	CustomColumns []CustomColumn `json:"customColumns"`
}

// Snapshot is the persistence unit: the whole document plus view state
type Snapshot struct {
	Sheets         []Sheet         `json:"sheets"`
	ActiveSheetID  string          `json:"activeSheetId"`
	VisibleColumns map[string]bool `json:"visibleColumns,omitempty"`
}

// CustomFieldKey derives the task field key for a custom column
func CustomFieldKey(columnID string) string {
	return "custom_" + columnID
}

// NewTaskID generates a fresh task id. Ids are never reused.
func NewTaskID() string {
	return fmt.Sprintf("task-%s", uuid.NewString())
}

// NewSheetID generates a fresh sheet id
func NewSheetID() string {
	return fmt.Sprintf("sheet-%s", uuid.NewString())
}

// NewColumnID generates a fresh custom column id
func NewColumnID() string {
	return fmt.Sprintf("col-%s", uuid.NewString())
}

// Clone returns a deep copy of the task
func (t Task) Clone() Task {
	out := t
	if t.Custom != nil {
		out.Custom = make(map[string]string, len(t.Custom))
		for k, v := range t.Custom {
			out.Custom[k] = v
		}
	}
	return out
}

// Clone returns a deep copy of the sheet. Nil slices stay nil so the JSON
// shape survives a round trip through a clone.
func (s Sheet) Clone() Sheet {
	out := s
	if s.Tasks != nil {
		out.Tasks = make([]Task, len(s.Tasks))
		for i := range s.Tasks {
			out.Tasks[i] = s.Tasks[i].Clone()
		}
	}
	if s.CustomColumns != nil {
		out.CustomColumns = make([]CustomColumn, len(s.CustomColumns))
		copy(out.CustomColumns, s.CustomColumns)
	}
	return out
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Sheets != nil {
		out.Sheets = make([]Sheet, len(s.Sheets))
		for i := range s.Sheets {
			out.Sheets[i] = s.Sheets[i].Clone()
		}
	}
	if s.VisibleColumns != nil {
		out.VisibleColumns = make(map[string]bool, len(s.VisibleColumns))
		for k, v := range s.VisibleColumns {
			out.VisibleColumns[k] = v
		}
	}
	return out
}

// TaskByID returns a pointer into the sheet's task slice, or nil
func (s *Sheet) TaskByID(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// ColumnByID returns a pointer into the sheet's column slice, or nil
func (s *Sheet) ColumnByID(id string) *CustomColumn {
	for i := range s.CustomColumns {
		if s.CustomColumns[i].ID == id {
			return &s.CustomColumns[i]
		}
	}
	return nil
}

// SheetByID returns a pointer into the snapshot's sheet slice, or nil
func (s *Snapshot) SheetByID(id string) *Sheet {
	for i := range s.Sheets {
		if s.Sheets[i].ID == id {
			return &s.Sheets[i]
		}
	}
	return nil
}

// ActiveSheet returns the active sheet, falling back to the first sheet
func (s *Snapshot) ActiveSheet() *Sheet {
	if sheet := s.SheetByID(s.ActiveSheetID); sheet != nil {
		return sheet
	}
	if len(s.Sheets) > 0 {
		return &s.Sheets[0]
	}
	return nil
}
