package document

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	snap := seededStore().Snapshot()

	data, err := Export(snap)
	if err != nil {
		t.Fatal(err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatal(err)
	}
	if env.Version != ExportVersion {
		t.Fatalf("version = %q", env.Version)
	}
	if env.ExportedAt == "" {
		t.Fatal("exportedAt must be stamped")
	}

	got, err := Import(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sheets) != len(snap.Sheets) || got.ActiveSheetID != snap.ActiveSheetID {
		t.Fatalf("round trip lost state: %+v", got)
	}
	if got.Sheets[0].Tasks[0].Name != "Build landing page" {
		t.Fatalf("task lost: %+v", got.Sheets[0].Tasks)
	}
}

func TestImportRejectsMissingSheets(t *testing.T) {
	_, err := Import([]byte(`{"version":"1.0","exportedAt":"2025-01-01T00:00:00Z"}`))
	if err == nil || !strings.Contains(err.Error(), "missing sheets") {
		t.Fatalf("err = %v", err)
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	if _, err := Import([]byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestImportFallsBackActiveSheet(t *testing.T) {
	snap, err := Import([]byte(`{"version":"1.0","sheets":[{"id":"a","name":"A","tasks":[],"customColumns":[]}],"activeSheetId":"gone"}`))
	if err != nil {
		t.Fatal(err)
	}
	if snap.ActiveSheetID != "a" {
		t.Fatalf("active = %q", snap.ActiveSheetID)
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	snap := seededStore().Snapshot()

	if err := ExportFile(snap, path); err != nil {
		t.Fatal(err)
	}
	got, err := ImportFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sheets) != 2 {
		t.Fatalf("sheets = %d", len(got.Sheets))
	}
}
