package assistant

import (
	"fmt"
	"strings"

	"github.com/ganttline/ganttline/internal/dates"
	"github.com/ganttline/ganttline/internal/models"
)

const systemPromptTemplate = `You are an AI assistant that helps manage a Gantt chart (project timeline) with full control over all features.

Your job is to understand natural language commands and convert them into structured actions.

AVAILABLE ACTIONS:
1. "add" - Create a new task in the current sheet
2. "update" - Modify an existing task (identify by name or ID, can be in any sheet)
3. "delete" - Remove a task (identify by name or ID, can be in any sheet)
4. "create-sheet" - Create a new sheet/tab
5. "rename-sheet" - Rename an existing sheet (identify by name or ID)
6. "switch-sheet" - Switch to a different sheet (identify by name or ID)
7. "delete-sheet" - Delete a sheet (identify by name or ID, cannot delete if it's the last sheet)
8. "add-column" - Add a custom column to the current sheet
9. "delete-column" - Delete a custom column from the current sheet

TASK STRUCTURE:
- name (required): The task name/description
- startDate: Start date in YYYY-MM-DD format
- endDate: End date in YYYY-MM-DD format
- owner: Person assigned to the task
- status: "planned", "ongoing", or "completed"
- progress: Number 0-100
- custom_<columnId>: Value for custom columns (use column name in updates, the system will map to columnId)

Today's date: %s

UNDERSTANDING COMMANDS:
- Dates: "today", "tomorrow", "next week", "January 15", "Jan 15", "1/15", "in 2 weeks", "next Monday"
- Task references: Use task names (fuzzy matching) or IDs. Can reference tasks across all sheets.
- Sheet references: Use sheet names (fuzzy matching) or IDs
- Status updates: "mark as ongoing", "set to completed", "mark as done"
- Progress: "set to 50%%", "update progress to 75%%"
- Custom fields: "set Priority to High", "update Budget to $5000" (if custom columns exist)

IMPORTANT:
- When referencing tasks or sheets, use fuzzy matching on names
- Always include sheetId when updating/deleting tasks in non-active sheets
- For custom column updates, use the column name in the updates object, the system will map it

Return ONLY valid JSON in this exact format:
{
  "action": "add" | "update" | "delete" | "create-sheet" | "rename-sheet" | "switch-sheet" | "delete-sheet" | "add-column" | "delete-column",
  "taskId": "task-id-here" (for update/delete task),
  "sheetId": "sheet-id-here" (for sheet operations, or when task is in different sheet),
  "task": { "name", "startDate", "endDate", "owner", "status", "progress", "customFields" } (for add),
  "updates": { "field": "value" } (for update task - can include custom fields by column name),
  "sheet": { "id", "name" } (for create-sheet),
  "sheetName": "new name" (for rename-sheet),
  "columnName": "column name" (for add-column/delete-column)
}`

// systemPrompt renders the instruction message with today's canonical date
func systemPrompt() string {
	return fmt.Sprintf(systemPromptTemplate, dates.Format(dates.Today()))
}

// userPrompt appends the document enumeration to the literal input text
func userPrompt(input string, ctx Context) string {
	var b strings.Builder
	b.WriteString(input)
	b.WriteString(sheetsContext(ctx))
	b.WriteString(tasksContext(ctx))
	b.WriteString(columnsContext(ctx))
	return b.String()
}

func sheetsContext(ctx Context) string {
	if len(ctx.Sheets) == 0 {
		return "\n\nNo sheets yet."
	}
	var b strings.Builder
	b.WriteString("\n\nAvailable sheets:\n")
	for i, s := range ctx.Sheets {
		if i > 0 {
			b.WriteByte('\n')
		}
		active := ""
		if s.ID == ctx.ActiveSheetID {
			active = " [CURRENTLY ACTIVE]"
		}
		fmt.Fprintf(&b, "- %q (ID: %s)%s - %d tasks", s.Name, s.ID, active, len(s.Tasks))
	}
	return b.String()
}

func tasksContext(ctx Context) string {
	name := ctx.ActiveSheetName()
	if len(ctx.ActiveSheetTasks) == 0 {
		return fmt.Sprintf("\n\nNo tasks in current sheet %q yet.", name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n\nTasks in current sheet %q:\n", name)
	for i, t := range ctx.ActiveSheetTasks {
		if i > 0 {
			b.WriteByte('\n')
		}
		start := t.StartDate
		if start == "" {
			start = "no start"
		}
		end := t.EndDate
		if end == "" {
			end = "no end"
		}
		status := t.Status
		if status == "" {
			status = models.StatusPlanned
		}
		fmt.Fprintf(&b, "- %q (ID: %s) - %s to %s", t.Name, t.ID, start, end)
		if t.Owner != "" {
			fmt.Fprintf(&b, " - Owner: %s", t.Owner)
		}
		fmt.Fprintf(&b, " - Status: %s - Progress: %d%%", status, t.Progress)
		for _, col := range ctx.CustomColumns {
			if v := t.Custom[models.CustomFieldKey(col.ID)]; v != "" {
				fmt.Fprintf(&b, " %s: %s", col.Name, v)
			}
		}
	}
	return b.String()
}

func columnsContext(ctx Context) string {
	if len(ctx.CustomColumns) == 0 {
		return "\n\nNo custom columns in current sheet."
	}
	names := make([]string, len(ctx.CustomColumns))
	for i, col := range ctx.CustomColumns {
		names[i] = col.Name
	}
	return fmt.Sprintf("\n\nCustom columns in current sheet: %s", strings.Join(names, ", "))
}
