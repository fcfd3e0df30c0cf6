package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fentz26/strive/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	// Verify file and parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestLoadEmptyDatabase(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	goals := s.Load()
	if len(goals) != 0 {
		t.Errorf("fresh database should load an empty collection, got %d goals", len(goals))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	goals := models.Collection{
		&models.Goal{
			ID:      "g-1",
			Title:   "Ship the release",
			Subject: "Work",
			Start:   "2025-03-01",
			Due:     "2025-03-15",
			Hours:   16,
			Notes:   "cut the branch first",
			Created: created,
			Tasks: []models.Task{
				{ID: "t-1", Text: "tag rc1", Done: true, Created: created},
				{ID: "t-2", Text: "write changelog", Done: false, Created: created.Add(time.Minute)},
			},
		},
		&models.Goal{
			ID:        "g-2",
			Title:     "Marathon",
			Due:       "2025-06-01",
			Created:   created.Add(time.Hour),
			Completed: true,
			Tasks:     []models.Task{},
		},
	}

	if err := s.Save(goals); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := s.Load()
	if len(got) != 2 {
		t.Fatalf("loaded %d goals, want 2", len(got))
	}
	// Collection order survives
	if got[0].ID != "g-1" || got[1].ID != "g-2" {
		t.Errorf("order not preserved: %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].Title != "Ship the release" || got[0].Subject != "Work" || got[0].Hours != 16 {
		t.Errorf("goal fields not preserved: %+v", got[0])
	}
	if !got[1].Completed {
		t.Error("completed flag not preserved")
	}
	if len(got[0].Tasks) != 2 {
		t.Fatalf("task count = %d, want 2", len(got[0].Tasks))
	}
	if got[0].Tasks[0].ID != "t-1" || !got[0].Tasks[0].Done {
		t.Errorf("task not preserved: %+v", got[0].Tasks[0])
	}
	if got[0].Tasks[1].Text != "write changelog" {
		t.Errorf("task order or text not preserved: %+v", got[0].Tasks[1])
	}
	if !got[0].Created.Equal(created) {
		t.Errorf("created timestamp drifted: %v", got[0].Created)
	}
	if got[1].Tasks == nil {
		t.Error("empty task list should load as non-nil")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	if err := s.Save(models.Collection{&models.Goal{ID: "a", Title: "A"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(models.Collection{&models.Goal{ID: "b", Title: "B"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := s.Load()
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("second save should fully replace the blob, got %v", got)
	}
}

func TestLoadCorruptBlob(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, goalsKey, `{"not": "an array"`)
	if err != nil {
		t.Fatalf("failed to plant corrupt blob: %v", err)
	}

	goals := s.Load()
	if len(goals) != 0 {
		t.Errorf("corrupt blob should load as an empty collection, got %d", len(goals))
	}

	// And the store must remain writable afterwards.
	if err := s.Save(models.Collection{&models.Goal{ID: "x", Title: "X"}}); err != nil {
		t.Fatalf("Save after corrupt load failed: %v", err)
	}
	if got := s.Load(); len(got) != 1 {
		t.Errorf("recovery save failed, got %d goals", len(got))
	}
}
