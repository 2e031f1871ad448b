package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordResult("classic", 0, 42, 90*time.Second); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}
	if err := store.RecordResult("classic", 1, 17, 30*time.Second); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}
	if err := store.RecordResult("tutorial", 0, 5, 10*time.Second); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}

	stat, found, err := store.BestForLevel("classic", 0)
	if err != nil {
		t.Fatalf("BestForLevel() failed: %v", err)
	}
	if !found {
		t.Fatal("Expected a recorded result for classic level 0")
	}
	if stat.BestMoves != 42 || stat.BestTime != 90*time.Second {
		t.Errorf("Got moves=%d time=%v, want 42 and 90s", stat.BestMoves, stat.BestTime)
	}

	stats, err := store.PackStats("classic")
	if err != nil {
		t.Fatalf("PackStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 stats for classic, got %d", len(stats))
	}
	if stats[0].LevelIndex != 0 || stats[1].LevelIndex != 1 {
		t.Errorf("Stats not ordered by level index: %v", stats)
	}
}

func TestStoreBestForMissingLevel(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.BestForLevel("classic", 0)
	if err != nil {
		t.Fatalf("BestForLevel() failed: %v", err)
	}
	if found {
		t.Error("Expected no result for an unplayed level")
	}
}

func TestStoreResultOnlyImproves(t *testing.T) {
	store := openTestStore(t)

	store.RecordResult("classic", 0, 50, 60*time.Second)

	// Worse on both axes: record unchanged.
	store.RecordResult("classic", 0, 80, 120*time.Second)
	stat, _, _ := store.BestForLevel("classic", 0)
	if stat.BestMoves != 50 || stat.BestTime != 60*time.Second {
		t.Errorf("Worse result overwrote the record: %+v", stat)
	}

	// Fewer moves but slower: only the move record improves.
	store.RecordResult("classic", 0, 30, 300*time.Second)
	stat, _, _ = store.BestForLevel("classic", 0)
	if stat.BestMoves != 30 {
		t.Errorf("Expected best moves 30, got %d", stat.BestMoves)
	}
	if stat.BestTime != 60*time.Second {
		t.Errorf("Slower time overwrote the record: %v", stat.BestTime)
	}
}

func TestStoreProgress(t *testing.T) {
	store := openTestStore(t)

	// No progress yet
	n, err := store.Progress("classic")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected progress 0 for unplayed pack, got %d", n)
	}

	if err := store.SetProgress("classic", 2); err != nil {
		t.Fatalf("SetProgress() failed: %v", err)
	}
	// Progress never regresses.
	if err := store.SetProgress("classic", 1); err != nil {
		t.Fatalf("SetProgress() failed: %v", err)
	}

	n, err = store.Progress("classic")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected progress 2, got %d", n)
	}
}

func TestStoreClearPack(t *testing.T) {
	store := openTestStore(t)

	store.RecordResult("classic", 0, 10, time.Minute)
	store.SetProgress("classic", 1)
	store.RecordResult("tutorial", 0, 5, time.Minute)

	if err := store.ClearPack("classic"); err != nil {
		t.Fatalf("ClearPack() failed: %v", err)
	}

	if _, found, _ := store.BestForLevel("classic", 0); found {
		t.Error("Expected no classic stats after clear")
	}
	if n, _ := store.Progress("classic"); n != 0 {
		t.Errorf("Expected progress 0 after clear, got %d", n)
	}

	// Other packs unaffected.
	if _, found, _ := store.BestForLevel("tutorial", 0); !found {
		t.Error("Tutorial stats should not be affected by clearing classic")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
