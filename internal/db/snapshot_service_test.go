package db

import (
	"path/filepath"
	"testing"

	"github.com/ganttline/ganttline/internal/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	if err := Initialize(path); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
		DB = nil
	})
}

func sampleSnapshot() models.Snapshot {
	return models.Snapshot{
		Sheets: []models.Sheet{
			{
				ID:   "s1",
				Name: "Main Project",
				Tasks: []models.Task{
					{ID: "t1", Name: "Build landing page", StartDate: "2025-01-01", EndDate: "2025-01-08", Status: models.StatusPlanned},
				},
				CustomColumns: []models.CustomColumn{},
			},
		},
		ActiveSheetID:  "s1",
		VisibleColumns: map[string]bool{"task": true},
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	setupTestDB(t)

	if err := SaveSnapshot("alice", sampleSnapshot()); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSnapshot("alice")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.ActiveSheetID != "s1" || len(got.Sheets) != 1 {
		t.Fatalf("got %+v", got)
	}
	if got.Sheets[0].Tasks[0].Name != "Build landing page" {
		t.Fatalf("tasks = %+v", got.Sheets[0].Tasks)
	}
}

func TestLoadSnapshotUnknownUser(t *testing.T) {
	setupTestDB(t)

	got, err := LoadSnapshot("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for an unknown user, got %+v", got)
	}
}

func TestSaveSnapshotOverwrites(t *testing.T) {
	setupTestDB(t)

	snap := sampleSnapshot()
	if err := SaveSnapshot("alice", snap); err != nil {
		t.Fatal(err)
	}

	snap.Sheets[0].Name = "Renamed"
	if err := SaveSnapshot("alice", snap); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSnapshot("alice")
	if err != nil {
		t.Fatal(err)
	}
	if got.Sheets[0].Name != "Renamed" {
		t.Fatalf("last write must win, got %q", got.Sheets[0].Name)
	}

	var count int64
	DB.Model(&models.DocumentRecord{}).Where("user_id = ?", "alice").Count(&count)
	if count != 1 {
		t.Fatalf("expected one record per user, got %d", count)
	}
}

func TestSnapshotsAreIsolatedPerUser(t *testing.T) {
	setupTestDB(t)

	if err := SaveSnapshot("alice", sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	other := sampleSnapshot()
	other.Sheets[0].Name = "Bob's Project"
	if err := SaveSnapshot("bob", other); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSnapshot("alice")
	if err != nil {
		t.Fatal(err)
	}
	if got.Sheets[0].Name != "Main Project" {
		t.Fatalf("cross-user bleed: %q", got.Sheets[0].Name)
	}
}

func TestSaveSnapshotRequiresUser(t *testing.T) {
	setupTestDB(t)

	if err := SaveSnapshot("", sampleSnapshot()); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestDeleteSnapshot(t *testing.T) {
	setupTestDB(t)

	if err := SaveSnapshot("alice", sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	if err := DeleteSnapshot("alice"); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSnapshot("alice")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}
