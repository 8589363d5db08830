package document

import (
	"fmt"

	"github.com/ganttline/ganttline/internal/models"
)

// Store owns the document snapshot and applies Actions to it. An Action is
// applied all-or-nothing; an action whose target has vanished (stale
// snapshot during a model round-trip) is dropped without error, matching the
// fail-soft policy. Only the last-sheet rule is a hard error.
type Store struct {
	snap models.Snapshot
}

// DefaultVisibleColumns is the initial grid view state
func DefaultVisibleColumns() map[string]bool {
	return map[string]bool{
		"task":      true,
		"today":     true,
		"startDate": true,
		"duration":  true,
		"endDate":   true,
		"owner":     true,
		"timeline":  true,
	}
}

// NewStore creates a store seeded with a single empty sheet
func NewStore() *Store {
	sheet := models.Sheet{
		ID:            models.NewSheetID(),
		Name:          "Main Project",
		Tasks:         []models.Task{},
		CustomColumns: []models.CustomColumn{},
	}
	return &Store{
		snap: models.Snapshot{
			Sheets:         []models.Sheet{sheet},
			ActiveSheetID:  sheet.ID,
			VisibleColumns: DefaultVisibleColumns(),
		},
	}
}

// FromSnapshot creates a store around a loaded snapshot. A snapshot without
// sheets gets the default seed; a dangling active id is re-pointed.
func FromSnapshot(snap *models.Snapshot) *Store {
	if snap == nil || len(snap.Sheets) == 0 {
		return NewStore()
	}
	s := &Store{snap: *snap}
	if s.snap.SheetByID(s.snap.ActiveSheetID) == nil {
		s.snap.ActiveSheetID = s.snap.Sheets[0].ID
	}
	if s.snap.VisibleColumns == nil {
		s.snap.VisibleColumns = DefaultVisibleColumns()
	}
	return s
}

// Snapshot returns a deep copy of the current document state. Holding it
// across Apply calls is safe, and writes through it never reach the store.
func (s *Store) Snapshot() models.Snapshot {
	return s.snap.Clone()
}

// Replace swaps in a whole new document, e.g. after an import
func (s *Store) Replace(snap *models.Snapshot) {
	replacement := FromSnapshot(snap)
	s.snap = replacement.snap
}

// ActiveSheet returns the active sheet
func (s *Store) ActiveSheet() *models.Sheet {
	return s.snap.ActiveSheet()
}

// Apply mutates the document according to the action
func (s *Store) Apply(action models.Action) error {
	if action == nil {
		return fmt.Errorf("no action to apply")
	}

	switch a := action.(type) {
	case models.AddTask:
		return s.addTask(a)
	case models.UpdateTask:
		return s.updateTask(a)
	case models.DeleteTask:
		return s.deleteTask(a)
	case models.CreateSheet:
		return s.createSheet(a)
	case models.RenameSheet:
		return s.renameSheet(a)
	case models.SwitchSheet:
		return s.switchSheet(a)
	case models.DeleteSheet:
		return s.deleteSheet(a)
	case models.AddColumn:
		return s.addColumn(a)
	case models.DeleteColumn:
		return s.deleteColumn(a)
	default:
		return fmt.Errorf("unknown action kind: %s", action.Kind())
	}
}

func (s *Store) addTask(a models.AddTask) error {
	sheet := s.snap.ActiveSheet()
	if sheet == nil {
		return fmt.Errorf("no active sheet")
	}
	sheet.Tasks = append(sheet.Tasks, a.Task)
	return nil
}

func (s *Store) updateTask(a models.UpdateTask) error {
	sheet := s.targetSheet(a.SheetID)
	if sheet == nil {
		return nil
	}
	task := sheet.TaskByID(a.TaskID)
	if task == nil {
		return nil
	}
	mergeUpdates(task, a.Updates)
	return nil
}

func (s *Store) deleteTask(a models.DeleteTask) error {
	sheet := s.targetSheet(a.SheetID)
	if sheet == nil {
		return nil
	}
	kept := sheet.Tasks[:0]
	for _, t := range sheet.Tasks {
		if t.ID != a.TaskID {
			kept = append(kept, t)
		}
	}
	sheet.Tasks = kept
	return nil
}

func (s *Store) createSheet(a models.CreateSheet) error {
	sheet := a.Sheet
	if sheet.ID == "" {
		sheet.ID = models.NewSheetID()
	}
	if sheet.Tasks == nil {
		sheet.Tasks = []models.Task{}
	}
	if sheet.CustomColumns == nil {
		sheet.CustomColumns = []models.CustomColumn{}
	}
	s.snap.Sheets = append(s.snap.Sheets, sheet)
	s.snap.ActiveSheetID = sheet.ID
	return nil
}

func (s *Store) renameSheet(a models.RenameSheet) error {
	if sheet := s.snap.SheetByID(a.SheetID); sheet != nil {
		sheet.Name = a.Name
	}
	return nil
}

func (s *Store) switchSheet(a models.SwitchSheet) error {
	if s.snap.SheetByID(a.SheetID) == nil {
		return nil
	}
	s.snap.ActiveSheetID = a.SheetID
	return nil
}

func (s *Store) deleteSheet(a models.DeleteSheet) error {
	if len(s.snap.Sheets) == 1 {
		return fmt.Errorf("cannot delete the last sheet")
	}
	if s.snap.SheetByID(a.SheetID) == nil {
		return nil
	}
	kept := s.snap.Sheets[:0]
	for _, sheet := range s.snap.Sheets {
		if sheet.ID != a.SheetID {
			kept = append(kept, sheet)
		}
	}
	s.snap.Sheets = kept
	if s.snap.ActiveSheetID == a.SheetID {
		s.snap.ActiveSheetID = s.snap.Sheets[0].ID
	}
	return nil
}

func (s *Store) addColumn(a models.AddColumn) error {
	sheet := s.snap.ActiveSheet()
	if sheet == nil {
		return fmt.Errorf("no active sheet")
	}
	sheet.CustomColumns = append(sheet.CustomColumns, models.CustomColumn{
		ID:      models.NewColumnID(),
		Name:    a.Name,
		Visible: true,
	})
	return nil
}

// deleteColumn removes the column definition only. Orphaned custom_<id>
// values stay on tasks so a recreated column can reclaim them.
func (s *Store) deleteColumn(a models.DeleteColumn) error {
	sheet := s.snap.ActiveSheet()
	if sheet == nil {
		return fmt.Errorf("no active sheet")
	}
	kept := sheet.CustomColumns[:0]
	for _, col := range sheet.CustomColumns {
		if col.ID != a.ColumnID {
			kept = append(kept, col)
		}
	}
	sheet.CustomColumns = kept
	return nil
}

func (s *Store) targetSheet(sheetID string) *models.Sheet {
	if sheetID == "" {
		return s.snap.ActiveSheet()
	}
	return s.snap.SheetByID(sheetID)
}

// mergeUpdates merges an updates payload into a task. Values arrive as
// loosely-typed JSON; numbers come through as float64.
func mergeUpdates(task *models.Task, updates map[string]any) {
	for key, value := range updates {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				task.Name = v
			}
		case "startDate":
			if v, ok := value.(string); ok {
				task.StartDate = v
			}
		case "endDate":
			if v, ok := value.(string); ok {
				task.EndDate = v
			}
		case "owner":
			if v, ok := value.(string); ok {
				task.Owner = v
			}
		case "status":
			if v, ok := value.(string); ok {
				task.Status = v
			}
		case "progress":
			if v, ok := toInt(value); ok {
				if v < 0 {
					v = 0
				} else if v > 100 {
					v = 100
				}
				task.Progress = v
			}
		default:
			if !isCustomKey(key) {
				continue
			}
			if task.Custom == nil {
				task.Custom = make(map[string]string)
			}
			task.Custom[key] = fmt.Sprintf("%v", value)
		}
	}
}

func isCustomKey(key string) bool {
	return len(key) > len("custom_") && key[:len("custom_")] == "custom_"
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
