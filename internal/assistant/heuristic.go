package assistant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ganttline/ganttline/internal/models"
	"github.com/ganttline/ganttline/internal/resolver"
)

// The no-model fallback: a keyword cascade over the raw input, evaluated
// top to bottom with first-match-wins semantics. Each rule pairs a keyword
// predicate with a handler; a handler that cannot resolve its target returns
// nil and the scan moves on. The default add-task branch only runs when no
// keyword rule fired at all, so an unresolvable "mark X as ongoing" ends as
// a no-op instead of a bogus new task.

type heuristicRule struct {
	name   string
	match  func(lower string) bool
	handle func(input string, ctx Context) *RawAction
}

var (
	createSheetRegex  = regexp.MustCompile(`(?i)(?:create|new|add)\s+(?:sheet|tab)\s+(?:called|named)?\s*["']?([^"']+)["']?`)
	renameSheetRegex  = regexp.MustCompile(`(?i)rename\s+(?:sheet|tab)\s+["']?([^"']+)["']?\s+(?:to|as)\s+["']?([^"']+)["']?`)
	switchSheetRegex  = regexp.MustCompile(`(?i)(?:switch to|go to|open|show)\s+(?:sheet|tab)?\s*["']?([^"']+)["']?`)
	deleteSheetRegex  = regexp.MustCompile(`(?i)(?:delete|remove)\s+(?:sheet|tab)\s+["']?([^"']+)["']?`)
	addColumnRegex    = regexp.MustCompile(`(?i)(?:add|create|new)\s+column\s+(?:called|named)?\s*["']?([^"']+)["']?`)
	deleteColumnRegex = regexp.MustCompile(`(?i)(?:delete|remove)\s+column\s+["']?([^"']+)["']?`)

	// Quoted string first, else a plain run of words
	taskNameRegex = regexp.MustCompile(`["']([^"']+)["']|(\w+(?:\s+\w+)*)`)

	// Default branch: quoted string, else a run of capitalized words
	newTaskNameRegex = regexp.MustCompile(`["']([^"']+)["']|([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
)

var heuristicRules = []heuristicRule{
	{
		name: "create-sheet",
		match: func(lower string) bool {
			return strings.Contains(lower, "create sheet") ||
				strings.Contains(lower, "new sheet") ||
				strings.Contains(lower, "add sheet")
		},
		handle: func(input string, ctx Context) *RawAction {
			name := ""
			if m := createSheetRegex.FindStringSubmatch(input); m != nil {
				name = strings.TrimSpace(m[1])
			}
			if name == "" {
				name = fmt.Sprintf("Sheet %d", time.Now().UnixMilli())
			}
			return &RawAction{Action: "create-sheet", SheetName: name}
		},
	},
	{
		name: "rename-sheet",
		match: func(lower string) bool {
			return strings.Contains(lower, "rename sheet") || strings.Contains(lower, "rename tab")
		},
		handle: func(input string, ctx Context) *RawAction {
			m := renameSheetRegex.FindStringSubmatch(input)
			if m == nil {
				return nil
			}
			oldName := strings.TrimSpace(m[1])
			newName := strings.TrimSpace(m[2])
			sheet := resolver.Sheet(ctx.Sheets, oldName)
			if sheet == nil || newName == "" {
				return nil
			}
			return &RawAction{Action: "rename-sheet", SheetID: sheet.ID, SheetName: newName}
		},
	},
	{
		name: "switch-sheet",
		match: func(lower string) bool {
			return strings.Contains(lower, "switch to") ||
				strings.Contains(lower, "go to") ||
				strings.Contains(lower, "open sheet") ||
				strings.Contains(lower, "show sheet")
		},
		handle: func(input string, ctx Context) *RawAction {
			m := switchSheetRegex.FindStringSubmatch(input)
			if m == nil {
				return nil
			}
			sheet := resolver.Sheet(ctx.Sheets, strings.TrimSpace(m[1]))
			if sheet == nil {
				return nil
			}
			return &RawAction{Action: "switch-sheet", SheetID: sheet.ID}
		},
	},
	{
		name: "delete-sheet",
		match: func(lower string) bool {
			return strings.Contains(lower, "delete sheet") || strings.Contains(lower, "remove sheet")
		},
		handle: func(input string, ctx Context) *RawAction {
			m := deleteSheetRegex.FindStringSubmatch(input)
			if m == nil {
				return nil
			}
			sheet := resolver.Sheet(ctx.Sheets, strings.TrimSpace(m[1]))
			if sheet == nil {
				return nil
			}
			return &RawAction{Action: "delete-sheet", SheetID: sheet.ID}
		},
	},
	{
		name: "add-column",
		match: func(lower string) bool {
			return strings.Contains(lower, "add column") ||
				strings.Contains(lower, "create column") ||
				strings.Contains(lower, "new column")
		},
		handle: func(input string, ctx Context) *RawAction {
			m := addColumnRegex.FindStringSubmatch(input)
			if m == nil || strings.TrimSpace(m[1]) == "" {
				return nil
			}
			return &RawAction{Action: "add-column", ColumnName: strings.TrimSpace(m[1])}
		},
	},
	{
		name: "delete-column",
		match: func(lower string) bool {
			return strings.Contains(lower, "delete column") || strings.Contains(lower, "remove column")
		},
		handle: func(input string, ctx Context) *RawAction {
			m := deleteColumnRegex.FindStringSubmatch(input)
			if m == nil {
				return nil
			}
			return &RawAction{Action: "delete-column", ColumnName: strings.TrimSpace(m[1])}
		},
	},
	{
		name: "mark-ongoing",
		match: func(lower string) bool {
			return strings.Contains(lower, "ongoing") ||
				strings.Contains(lower, "in progress") ||
				strings.Contains(lower, "started")
		},
		handle: func(input string, ctx Context) *RawAction {
			task := extractTask(input, ctx.ActiveSheetTasks)
			if task == nil {
				return nil
			}
			progress := task.Progress
			if progress == 0 {
				progress = 10
			}
			return &RawAction{
				Action:  "update",
				TaskID:  task.ID,
				Updates: map[string]any{"status": models.StatusOngoing, "progress": progress},
			}
		},
	},
	{
		name: "mark-completed",
		match: func(lower string) bool {
			return strings.Contains(lower, "complete") ||
				strings.Contains(lower, "done") ||
				strings.Contains(lower, "finished")
		},
		handle: func(input string, ctx Context) *RawAction {
			task := extractTask(input, ctx.ActiveSheetTasks)
			if task == nil {
				return nil
			}
			return &RawAction{
				Action:  "update",
				TaskID:  task.ID,
				Updates: map[string]any{"status": models.StatusCompleted, "progress": 100},
			}
		},
	},
	{
		name: "delete-task",
		match: func(lower string) bool {
			return strings.Contains(lower, "delete") || strings.Contains(lower, "remove")
		},
		handle: func(input string, ctx Context) *RawAction {
			task := extractTask(input, ctx.ActiveSheetTasks)
			if task == nil {
				return nil
			}
			return &RawAction{Action: "delete", TaskID: task.ID}
		},
	},
}

// parseHeuristic derives a raw action directly from the text without any
// external call. Returns nil when nothing actionable was recognized.
func parseHeuristic(input string, ctx Context) *RawAction {
	lower := strings.ToLower(input)
	keywordMatched := false

	for _, rule := range heuristicRules {
		if !rule.match(lower) {
			continue
		}
		keywordMatched = true
		if raw := rule.handle(input, ctx); raw != nil {
			return raw
		}
	}
	if keywordMatched {
		return nil
	}

	// Default: treat the input as a new task name
	name := strings.TrimSpace(input)
	if m := newTaskNameRegex.FindStringSubmatch(input); m != nil {
		if m[1] != "" {
			name = m[1]
		} else if m[2] != "" {
			name = m[2]
		}
	}
	if len(name) < 2 {
		return nil
	}
	return &RawAction{Action: "add", Task: &RawTask{Name: name}}
}

// extractTask pulls a task reference out of the text: a quoted name if
// present, otherwise the longest leading run of word characters.
func extractTask(input string, tasks []models.Task) *models.Task {
	m := taskNameRegex.FindStringSubmatch(input)
	if m == nil {
		return nil
	}
	name := m[1]
	if name == "" {
		name = m[2]
	}
	return resolver.Task(tasks, name)
}
