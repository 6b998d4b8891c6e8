package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akovalov/tui-aimtrainer/internal/core"
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

func summary(tier string, score, hits, misses int) core.SessionSummary {
	return core.SessionSummary{
		Tier:     tier,
		Score:    score,
		Hits:     hits,
		Misses:   misses,
		Duration: 30 * time.Second,
	}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []core.SessionSummary{
		summary("Medium", 10, 10, 0),
		summary("Medium", 5, 6, 1),
		summary("Medium", 20, 22, 2),
		summary("Hard", 50, 53, 3),
	} {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.TopSessions("Medium", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("Expected 3 Medium sessions, got %d", len(sessions))
	}

	// Should be sorted descending by score
	if sessions[0].Score != 20 || sessions[1].Score != 10 || sessions[2].Score != 5 {
		t.Errorf("Sessions not in score order: %d, %d, %d",
			sessions[0].Score, sessions[1].Score, sessions[2].Score)
	}

	if sessions[0].Hits != 22 || sessions[0].Misses != 2 {
		t.Errorf("Expected 22 hits / 2 misses, got %d / %d", sessions[0].Hits, sessions[0].Misses)
	}
	if sessions[0].Duration != 30 {
		t.Errorf("Expected 30s duration, got %d", sessions[0].Duration)
	}

	hard, err := store.TopSessions("Hard", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 Hard session, got %d", len(hard))
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(summary("Easy", (i+1)*10, 0, 0))
	}

	sessions, err := store.TopSessions("Easy", 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].Score != 50 || sessions[1].Score != 40 || sessions[2].Score != 30 {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	best, err := store.BestScore("Medium")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 best score on empty store, got %d", best)
	}

	store.SaveSession(summary("Medium", 7, 0, 0))
	store.SaveSession(summary("Medium", 15, 0, 0))
	store.SaveSession(summary("Hard", 99, 0, 0))

	best, err = store.BestScore("Medium")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 15 {
		t.Errorf("Expected best score 15, got %d", best)
	}
}

func TestStoreTierStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(summary("Hard", 10, 12, 4))
	store.SaveSession(summary("Hard", 20, 21, 3))

	stats, err := store.GetTierStats("Hard")
	if err != nil {
		t.Fatalf("GetTierStats() failed: %v", err)
	}

	if stats.SessionCount != 2 {
		t.Errorf("Expected 2 sessions, got %d", stats.SessionCount)
	}
	if stats.BestScore != 20 {
		t.Errorf("Expected best 20, got %d", stats.BestScore)
	}
	if stats.AvgScore != 15 {
		t.Errorf("Expected avg 15, got %v", stats.AvgScore)
	}
	if stats.TotalHits != 33 || stats.TotalMisses != 7 {
		t.Errorf("Expected 33 hits / 7 misses, got %d / %d", stats.TotalHits, stats.TotalMisses)
	}
	if acc := stats.Accuracy(); acc < 0.82 || acc > 0.83 {
		t.Errorf("Expected accuracy about 0.825, got %v", acc)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreTierStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetTierStats("Easy")
	if err != nil {
		t.Fatalf("GetTierStats() failed: %v", err)
	}
	if stats.SessionCount != 0 || stats.BestScore != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
	if stats.Accuracy() != 0 {
		t.Errorf("Expected 0 accuracy with no clicks, got %v", stats.Accuracy())
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(summary("Easy", 1, 0, 0))
	store.SaveSession(summary("Medium", 2, 0, 0))
	store.SaveSession(summary("Hard", 3, 0, 0))

	sessions, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}
	// Most recent first
	if sessions[0].Tier != "Hard" || sessions[1].Tier != "Medium" {
		t.Errorf("Expected Hard then Medium, got %s then %s", sessions[0].Tier, sessions[1].Tier)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(summary("Easy", 1, 0, 0))
	store.SaveSession(summary("Medium", 2, 0, 0))

	if err := store.ClearSessions("Easy"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	easy, _ := store.TopSessions("Easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected Easy cleared, got %d sessions", len(easy))
	}
	medium, _ := store.TopSessions("Medium", 10)
	if len(medium) != 1 {
		t.Errorf("Expected Medium untouched, got %d sessions", len(medium))
	}

	// Empty tier clears everything
	if err := store.ClearSessions(""); err != nil {
		t.Fatalf("ClearSessions(\"\") failed: %v", err)
	}
	medium, _ = store.TopSessions("Medium", 10)
	if len(medium) != 0 {
		t.Errorf("Expected full clear, got %d Medium sessions", len(medium))
	}
}

func TestSessionEntryAccuracy(t *testing.T) {
	e := SessionEntry{Hits: 8, Misses: 2}
	if e.Accuracy() != 0.8 {
		t.Errorf("Accuracy() = %v, expected 0.8", e.Accuracy())
	}

	empty := SessionEntry{}
	if empty.Accuracy() != 0 {
		t.Errorf("Accuracy() with no clicks = %v, expected 0", empty.Accuracy())
	}
}
