package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

func TestStorePutOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("score", "3"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("time", "65"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	// Same key again must overwrite, not duplicate
	if err := store.Put("score", "5"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	if got := sessionValue(t, store, "score"); got != "5" {
		t.Errorf("session[score] = %q, expected \"5\"", got)
	}
	if got := sessionValue(t, store, "time"); got != "65" {
		t.Errorf("session[time] = %q, expected \"65\"", got)
	}
	if n := sessionCount(t, store); n != 2 {
		t.Errorf("Expected 2 session rows, got %d", n)
	}
}

func TestStoreClearSession(t *testing.T) {
	store := openTestStore(t)

	store.Put("score", "9")
	store.Put("time", "120")
	store.SaveScore(9, 120)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	if n := sessionCount(t, store); n != 0 {
		t.Errorf("Expected empty session table after Clear, got %d rows", n)
	}

	// Score history must survive a session clear
	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("Score history should not be affected by Clear, got %d rows", len(scores))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some scores
	if _, err := store.SaveScore(100, 60); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(50, 30); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(200, 90); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	if scores[0].DurationSecs != 90 {
		t.Errorf("Expected duration 90 on top entry, got %d", scores[0].DurationSecs)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore((i+1)*100, 10)
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with empty history, got %d", high)
	}

	// Add scores
	store.SaveScore(100, 10)
	store.SaveScore(300, 20)
	store.SaveScore(200, 30)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreGetStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(10, 30)
	store.SaveScore(30, 60)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Nested directories must be created on demand
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

func sessionValue(t *testing.T, store *Store, key string) string {
	t.Helper()
	var value string
	err := store.db.QueryRow("SELECT value FROM session WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return ""
	}
	if err != nil {
		t.Fatalf("query session value: %v", err)
	}
	return value
}

func sessionCount(t *testing.T, store *Store) int {
	t.Helper()
	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM session").Scan(&n); err != nil {
		t.Fatalf("count session rows: %v", err)
	}
	return n
}
