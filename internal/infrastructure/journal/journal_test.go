package journal

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2024, time.March, 15, 5, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := store.Append(Entry{
			Date:       base.AddDate(0, 0, i).Format("2006-01-02"),
			Trigger:    "cron",
			Created:    i,
			RecordedAt: base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2024-03-17" {
		t.Fatalf("expected newest first, got %s", entries[0].Date)
	}
}

func TestLastRunEmpty(t *testing.T) {
	store := openTestStore(t)

	entry, err := store.LastRun()
	if err != nil {
		t.Fatalf("LastRun: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil for an empty journal, got %+v", entry)
	}
}

func TestCleanup(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2024, time.March, 15, 5, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := store.Append(Entry{Date: "d", RecordedAt: base.AddDate(0, 0, i)}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	if err := store.Cleanup(base.AddDate(0, 0, 3)); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	size, err := store.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != 2 {
		t.Fatalf("expected 2 entries after cleanup, got %d", size)
	}
}
