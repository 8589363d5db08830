package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/ganttline/ganttline/internal/dates"
	"github.com/ganttline/ganttline/internal/models"
	"github.com/ganttline/ganttline/internal/resolver"
)

// Reserved task field names in an updates payload. Anything else that is not
// already a derived custom key is treated as a custom column display name.
var reservedUpdateKeys = map[string]bool{
	"name":      true,
	"startDate": true,
	"endDate":   true,
	"owner":     true,
	"status":    true,
	"progress":  true,
}

// Normalize validates and repairs a raw action into a typed one. This is the
// boundary between untrusted output (model or heuristic) and the rest of the
// system. A tag whose required resolution fails yields nil; the command is
// silently dropped and nothing is partially applied.
func Normalize(raw *RawAction, ctx Context) models.Action {
	if raw == nil {
		return nil
	}

	switch raw.Action {
	case "create-sheet":
		return normalizeCreateSheet(raw)
	case "rename-sheet":
		return normalizeRenameSheet(raw, ctx)
	case "switch-sheet":
		if sheet := resolveSheet(raw, ctx); sheet != nil {
			return models.SwitchSheet{SheetID: sheet.ID}
		}
	case "delete-sheet":
		if sheet := resolveSheet(raw, ctx); sheet != nil {
			return models.DeleteSheet{SheetID: sheet.ID}
		}
	case "add-column":
		if name := strings.TrimSpace(raw.ColumnName); name != "" {
			return models.AddColumn{Name: name}
		}
	case "delete-column":
		if col := resolver.Column(ctx.CustomColumns, raw.ColumnName); col != nil {
			return models.DeleteColumn{ColumnID: col.ID}
		}
	case "delete":
		return normalizeDeleteTask(raw, ctx)
	case "update":
		return normalizeUpdateTask(raw, ctx)
	case "add":
		return normalizeAddTask(raw, ctx)
	}

	return nil
}

// create-sheet always succeeds; a fresh id is synthesized and a missing name
// gets a timestamp placeholder
func normalizeCreateSheet(raw *RawAction) models.Action {
	name := ""
	if raw.Sheet != nil {
		name = strings.TrimSpace(raw.Sheet.Name)
	}
	if name == "" {
		name = strings.TrimSpace(raw.SheetName)
	}
	if name == "" {
		name = fmt.Sprintf("Sheet %d", time.Now().UnixMilli())
	}
	return models.CreateSheet{
		Sheet: models.Sheet{
			ID:            models.NewSheetID(),
			Name:          name,
			Tasks:         []models.Task{},
			CustomColumns: []models.CustomColumn{},
		},
	}
}

func normalizeRenameSheet(raw *RawAction, ctx Context) models.Action {
	sheet := resolveSheet(raw, ctx)
	name := strings.TrimSpace(raw.SheetName)
	if sheet == nil || name == "" {
		return nil
	}
	return models.RenameSheet{SheetID: sheet.ID, Name: name}
}

// resolveSheet locates the target sheet by explicit id, else fuzzy name
func resolveSheet(raw *RawAction, ctx Context) *models.Sheet {
	if raw.SheetID != "" {
		for i := range ctx.Sheets {
			if ctx.Sheets[i].ID == raw.SheetID {
				return &ctx.Sheets[i]
			}
		}
	}
	return resolver.Sheet(ctx.Sheets, raw.SheetName)
}

// resolveTask locates the target task: explicit sheet id or active sheet,
// then task id or fuzzy name within that sheet. Returns the task and the
// sheet id it was found under. Ids resolve strictly: a stale id misses
// rather than degrade to fuzzy matching on the id string, which could land
// on an unrelated task.
func resolveTask(raw *RawAction, ctx Context) (*models.Task, string) {
	if raw.TaskID == "" && raw.TaskName == "" {
		return nil, ""
	}

	searchSheetID := raw.SheetID
	if searchSheetID == "" {
		searchSheetID = ctx.ActiveSheetID
	}
	searchTasks := ctx.ActiveSheetTasks
	for i := range ctx.Sheets {
		if ctx.Sheets[i].ID == searchSheetID {
			searchTasks = ctx.Sheets[i].Tasks
			break
		}
	}

	if raw.TaskID != "" {
		for i := range searchTasks {
			if searchTasks[i].ID == raw.TaskID {
				return &searchTasks[i], searchSheetID
			}
		}
	}
	if raw.TaskName != "" {
		if task := resolver.Task(searchTasks, raw.TaskName); task != nil {
			return task, searchSheetID
		}
	}
	return nil, ""
}

func normalizeDeleteTask(raw *RawAction, ctx Context) models.Action {
	task, sheetID := resolveTask(raw, ctx)
	if task == nil {
		return nil
	}
	return models.DeleteTask{SheetID: sheetID, TaskID: task.ID}
}

func normalizeUpdateTask(raw *RawAction, ctx Context) models.Action {
	task, sheetID := resolveTask(raw, ctx)
	if task == nil || raw.Updates == nil {
		return nil
	}

	updates := make(map[string]any, len(raw.Updates))
	for key, value := range raw.Updates {
		switch {
		case reservedUpdateKeys[key] || strings.HasPrefix(key, "custom_"):
			updates[key] = value
		default:
			// Custom column referenced by display name; unresolved names
			// are dropped silently
			if col := resolver.Column(ctx.CustomColumns, key); col != nil {
				updates[models.CustomFieldKey(col.ID)] = value
			}
		}
	}

	if v, ok := updates["startDate"].(string); ok {
		updates["startDate"] = dates.Normalize(v)
	}
	if v, ok := updates["endDate"].(string); ok {
		updates["endDate"] = dates.Normalize(v)
	}

	return models.UpdateTask{SheetID: sheetID, TaskID: task.ID, Updates: updates}
}

func normalizeAddTask(raw *RawAction, ctx Context) models.Action {
	if raw.Task == nil || strings.TrimSpace(raw.Task.Name) == "" {
		return nil
	}
	in := raw.Task

	startDate := dates.Format(dates.Today())
	if in.StartDate != "" {
		startDate = dates.Normalize(in.StartDate)
	}
	endDate := dates.AddDays(dates.Format(dates.Today()), 7)
	if in.EndDate != "" {
		endDate = dates.Normalize(in.EndDate)
	}
	// End before start is auto-corrected at creation only
	if dates.Before(endDate, startDate) {
		endDate = dates.AddDays(startDate, 7)
	}

	status := in.Status
	if status != models.StatusPlanned && status != models.StatusOngoing && status != models.StatusCompleted {
		status = models.StatusPlanned
	}
	progress := in.Progress
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	task := models.Task{
		ID:        models.NewTaskID(),
		Name:      in.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		Progress:  progress,
		Owner:     in.Owner,
	}

	// Custom fields come keyed by column display name; unresolved names are
	// dropped silently
	for columnName, value := range in.CustomFields {
		if col := resolver.Column(ctx.CustomColumns, columnName); col != nil {
			if task.Custom == nil {
				task.Custom = make(map[string]string)
			}
			task.Custom[models.CustomFieldKey(col.ID)] = value
		}
	}

	return models.AddTask{Task: task}
}
