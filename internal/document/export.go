package document

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ganttline/ganttline/internal/models"
)

// ExportVersion is stamped into every exported document
const ExportVersion = "1.0"

// Envelope is the JSON export/import format
type Envelope struct {
	Version        string          `json:"version"`
	ExportedAt     string          `json:"exportedAt"`
	Sheets         []models.Sheet  `json:"sheets"`
	ActiveSheetID  string          `json:"activeSheetId,omitempty"`
	VisibleColumns map[string]bool `json:"visibleColumns,omitempty"`
}

// Export serializes the snapshot into the versioned envelope
func Export(snap models.Snapshot) ([]byte, error) {
	env := Envelope{
		Version:        ExportVersion,
		ExportedAt:     time.Now().Format(time.RFC3339),
		Sheets:         snap.Sheets,
		ActiveSheetID:  snap.ActiveSheetID,
		VisibleColumns: snap.VisibleColumns,
	}
	return json.MarshalIndent(env, "", "  ")
}

// ExportFile writes the envelope to a file
func ExportFile(snap models.Snapshot, path string) error {
	data, err := Export(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Import parses an exported envelope back into a snapshot. A document
// without a sheets array is rejected; a missing active sheet id falls back
// to the first sheet.
func Import(data []byte) (*models.Snapshot, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid JSON file: %w", err)
	}
	if env.Sheets == nil {
		return nil, fmt.Errorf("invalid file format: missing sheets array")
	}

	snap := &models.Snapshot{
		Sheets:         env.Sheets,
		ActiveSheetID:  env.ActiveSheetID,
		VisibleColumns: env.VisibleColumns,
	}
	if snap.SheetByID(snap.ActiveSheetID) == nil && len(snap.Sheets) > 0 {
		snap.ActiveSheetID = snap.Sheets[0].ID
	}
	return snap, nil
}

// ImportFile reads and parses an exported document
func ImportFile(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Import(data)
}
