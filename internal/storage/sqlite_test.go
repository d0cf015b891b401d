package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/NUDC/wego-game/internal/core"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestBestScoreMonotonic(t *testing.T) {
	store := openTestStore(t)

	if _, ok := store.BestScore("stroop"); ok {
		t.Error("BestScore should report absence before any save")
	}

	if err := store.SetBestScoreIfHigher("stroop", 50); err != nil {
		t.Fatalf("SetBestScoreIfHigher() failed: %v", err)
	}
	// A lower score must be a no-op
	if err := store.SetBestScoreIfHigher("stroop", 40); err != nil {
		t.Fatalf("SetBestScoreIfHigher() failed: %v", err)
	}

	score, ok := store.BestScore("stroop")
	if !ok || score != 50 {
		t.Errorf("BestScore = %d (ok=%v), want 50", score, ok)
	}

	// An equal score must also be a no-op (strictly higher only)
	if err := store.SetBestScoreIfHigher("stroop", 50); err != nil {
		t.Fatalf("SetBestScoreIfHigher() failed: %v", err)
	}
	if err := store.SetBestScoreIfHigher("stroop", 60); err != nil {
		t.Fatalf("SetBestScoreIfHigher() failed: %v", err)
	}
	score, _ = store.BestScore("stroop")
	if score != 60 {
		t.Errorf("BestScore = %d, want 60", score)
	}
}

func TestBestScoresMap(t *testing.T) {
	store := openTestStore(t)

	store.SetBestScoreIfHigher("memory", 500)
	store.SetBestScoreIfHigher("reaction", 650)

	best, err := store.BestScores()
	if err != nil {
		t.Fatalf("BestScores() failed: %v", err)
	}
	if len(best) != 2 || best["memory"] != 500 || best["reaction"] != 650 {
		t.Errorf("BestScores() = %v", best)
	}
}

func TestAppendRecordFIFOEviction(t *testing.T) {
	store := openTestStore(t)

	// Append 205 records; exactly 200 must survive with the 5 oldest evicted
	for i := 1; i <= MaxRecords+5; i++ {
		if _, err := store.AppendRecord("memory", core.DifficultyNormal, i); err != nil {
			t.Fatalf("AppendRecord(%d) failed: %v", i, err)
		}
	}

	records, err := store.Records()
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}

	if len(records) != MaxRecords {
		t.Fatalf("Expected %d records after trim, got %d", MaxRecords, len(records))
	}

	// Survivors are scores 6..205 in insertion order
	if records[0].Score != 6 {
		t.Errorf("Oldest surviving record score = %d, want 6", records[0].Score)
	}
	if records[len(records)-1].Score != 205 {
		t.Errorf("Newest record score = %d, want 205", records[len(records)-1].Score)
	}
	for i := 1; i < len(records); i++ {
		if records[i].Score != records[i-1].Score+1 {
			t.Fatalf("Relative order broken around index %d", i)
		}
	}
}

func TestRecordsForGame(t *testing.T) {
	store := openTestStore(t)

	store.AppendRecord("memory", core.DifficultyEasy, 300)
	store.AppendRecord("stroop", core.DifficultyHard, 120)
	store.AppendRecord("memory", core.DifficultyNormal, 700)

	records, err := store.RecordsForGame("memory")
	if err != nil {
		t.Fatalf("RecordsForGame() failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 memory records, got %d", len(records))
	}
	if records[0].Score != 300 || records[1].Score != 700 {
		t.Errorf("Records out of insertion order: %v", records)
	}
	if records[0].Difficulty != core.DifficultyEasy {
		t.Errorf("Difficulty not round-tripped, got %s", records[0].Difficulty)
	}
}

func TestClearAll(t *testing.T) {
	store := openTestStore(t)

	store.SetBestScoreIfHigher("memory", 100)
	store.AppendRecord("memory", core.DifficultyEasy, 100)

	if err := store.ClearAll(); err != nil {
		t.Fatalf("ClearAll() failed: %v", err)
	}

	if _, ok := store.BestScore("memory"); ok {
		t.Error("Best score survived ClearAll")
	}
	records, _ := store.Records()
	if len(records) != 0 {
		t.Errorf("Records survived ClearAll: %d", len(records))
	}
}

func TestStatsForGame(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.AppendRecord("arithmetic", core.DifficultyNormal, i*100)
		store.SetBestScoreIfHigher("arithmetic", i*100)
	}

	stats, err := store.StatsForGame("arithmetic")
	if err != nil {
		t.Fatalf("StatsForGame() failed: %v", err)
	}

	if stats.Sessions != 4 {
		t.Errorf("Sessions = %d, want 4", stats.Sessions)
	}
	if stats.BestScore != 400 {
		t.Errorf("BestScore = %d, want 400", stats.BestScore)
	}
	if stats.AvgScore != 250 {
		t.Errorf("AvgScore = %v, want 250", stats.AvgScore)
	}
}

func TestStatsEmptyGame(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.StatsForGame("pattern")
	if err != nil {
		t.Fatalf("StatsForGame() on empty log failed: %v", err)
	}
	if stats.Sessions != 0 || stats.BestScore != 0 {
		t.Errorf("Empty game stats = %+v", stats)
	}
}

func TestRecordIDsIncrease(t *testing.T) {
	store := openTestStore(t)

	var lastID int64
	for i := 0; i < 10; i++ {
		id, err := store.AppendRecord("pattern", core.DifficultyEasy, i)
		if err != nil {
			t.Fatalf("AppendRecord failed: %v", err)
		}
		if id <= lastID {
			t.Fatalf("IDs must increase: %d after %d", id, lastID)
		}
		lastID = id
	}
}

func ExampleStore_AppendRecord() {
	store, _ := Open(filepath.Join(os.TempDir(), "wego-example.db"))
	defer store.Close()
	defer store.ClearAll()

	store.AppendRecord("memory", core.DifficultyEasy, 480)
	records, _ := store.Records()
	fmt.Println(len(records) > 0)
	// Output: true
}
