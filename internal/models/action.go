package models

import "fmt"

// Action is the normalized instruction produced by the assistant interpreter.
// Exactly one variant per command kind; a nil Action means "no actionable
// command recognized". Actions are applied atomically by the document store,
// never partially.
type Action interface {
	Kind() string
	Describe() string
}

// AddTask creates a new task in the active sheet
type AddTask struct {
	Task Task
}

// UpdateTask merges field updates into an existing task.
// Updates keys are the reserved task fields (name, startDate, endDate, owner,
// status, progress) or derived custom field keys ("custom_<columnID>").
type UpdateTask struct {
	SheetID string
	TaskID  string
	Updates map[string]any
}

// DeleteTask removes a task from a sheet
type DeleteTask struct {
	SheetID string
	TaskID  string
}

// CreateSheet appends a new sheet and makes it active
type CreateSheet struct {
	Sheet Sheet
}

// RenameSheet changes a sheet's display name
type RenameSheet struct {
	SheetID string
	Name    string
}

// SwitchSheet changes the active sheet
type SwitchSheet struct {
	SheetID string
}

// DeleteSheet removes a sheet. The store rejects deleting the last one.
type DeleteSheet struct {
	SheetID string
}

// AddColumn adds a custom column to the active sheet
type AddColumn struct {
	Name string
}

// DeleteColumn removes a custom column from the active sheet
type DeleteColumn struct {
	ColumnID string
}

func (AddTask) Kind() string      { return "add" }
func (UpdateTask) Kind() string   { return "update" }
func (DeleteTask) Kind() string   { return "delete" }
func (CreateSheet) Kind() string  { return "create-sheet" }
func (RenameSheet) Kind() string  { return "rename-sheet" }
func (SwitchSheet) Kind() string  { return "switch-sheet" }
func (DeleteSheet) Kind() string  { return "delete-sheet" }
func (AddColumn) Kind() string    { return "add-column" }
func (DeleteColumn) Kind() string { return "delete-column" }

func (a AddTask) Describe() string {
	return fmt.Sprintf("add task %q (%s to %s)", a.Task.Name, a.Task.StartDate, a.Task.EndDate)
}

func (a UpdateTask) Describe() string {
	return fmt.Sprintf("update task %s (%d fields)", a.TaskID, len(a.Updates))
}

func (a DeleteTask) Describe() string {
	return fmt.Sprintf("delete task %s", a.TaskID)
}

func (a CreateSheet) Describe() string {
	return fmt.Sprintf("create sheet %q", a.Sheet.Name)
}

func (a RenameSheet) Describe() string {
	return fmt.Sprintf("rename sheet %s to %q", a.SheetID, a.Name)
}

func (a SwitchSheet) Describe() string {
	return fmt.Sprintf("switch to sheet %s", a.SheetID)
}

func (a DeleteSheet) Describe() string {
	return fmt.Sprintf("delete sheet %s", a.SheetID)
}

func (a AddColumn) Describe() string {
	return fmt.Sprintf("add column %q", a.Name)
}

func (a DeleteColumn) Describe() string {
	return fmt.Sprintf("delete column %s", a.ColumnID)
}
