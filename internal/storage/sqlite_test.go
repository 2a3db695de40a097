package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game   string
		player string
		score  int
		wave   int
	}{
		{"colorbang", "ana", 100, 3},
		{"colorbang", "bo", 50, 2},
		{"colorbang", "ana", 200, 5},
		{"colorbang_chaos", "bo", 500, 7},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.player, r.score, r.wave); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("colorbang", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[0].Wave != 5 || scores[0].Player != "ana" {
		t.Errorf("Unexpected top entry %+v", scores[0])
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	chaos, err := store.TopScores("colorbang_chaos", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(chaos) != 1 {
		t.Errorf("Expected 1 chaos score, got %d", len(chaos))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "", (i+1)*100, i+1)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreTiesBrokenByWave(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("colorbang", "low", 100, 2)
	store.SaveScore("colorbang", "high", 100, 6)

	scores, err := store.TopScores("colorbang", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "high" {
		t.Errorf("Expected the deeper run first, got %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("colorbang")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveScore("colorbang", "", 100, 1)
	store.SaveScore("colorbang", "", 300, 4)
	store.SaveScore("colorbang", "", 200, 2)

	high, err = store.HighScore("colorbang")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("colorbang")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (GameStats{}) {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveScore("colorbang", "", 100, 3)
	store.SaveScore("colorbang", "", 300, 2)

	stats, err := store.Stats("colorbang")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := GameStats{Runs: 2, BestScore: 300, BestWave: 3, AvgScore: 200}
	if stats != want {
		t.Errorf("Expected %+v, got %+v", want, stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("colorbang", "", 100, 1)
	store.SaveScore("colorbang_chaos", "", 200, 1)

	if err := store.ClearScores("colorbang"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("colorbang", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores("colorbang_chaos", 10)
	if len(other) != 1 {
		t.Errorf("Clearing one game should keep the other, got %d", len(other))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", "", i*10, i)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
