package assistant

// RawAction is the untrusted wire shape produced by the model (or the
// heuristic parser) before validation. Exactly one top-level action tag plus
// tag-specific optional fields; anything else is a parse failure.
type RawAction struct {
	Action     string            `json:"action"`
	TaskID     string            `json:"taskId,omitempty"`
	TaskName   string            `json:"taskName,omitempty"`
	SheetID    string            `json:"sheetId,omitempty"`
	Task       *RawTask          `json:"task,omitempty"`
	Updates    map[string]any    `json:"updates,omitempty"`
	Sheet      *RawSheet         `json:"sheet,omitempty"`
	SheetName  string            `json:"sheetName,omitempty"`
	ColumnName string            `json:"columnName,omitempty"`
}

// RawTask is the task payload of a raw "add" action
type RawTask struct {
	Name         string            `json:"name"`
	StartDate    string            `json:"startDate,omitempty"`
	EndDate      string            `json:"endDate,omitempty"`
	Owner        string            `json:"owner,omitempty"`
	Status       string            `json:"status,omitempty"`
	Progress     int               `json:"progress,omitempty"`
	CustomFields map[string]string `json:"customFields,omitempty"`
}

// RawSheet is the sheet payload of a raw "create-sheet" action
type RawSheet struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}
