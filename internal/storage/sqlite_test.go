package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akorchagin/merge48/internal/session"
)

var _ session.BestStore = (*Store)(nil)

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

func TestStoreBestUpsert(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No best yet
	best, err := store.Best("classic")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best of 0 for empty variant, got %d", best)
	}

	if err := store.SetBest("classic", 100); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	best, _ = store.Best("classic")
	if best != 100 {
		t.Errorf("Expected best of 100, got %d", best)
	}

	// Higher value replaces
	if err := store.SetBest("classic", 300); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	best, _ = store.Best("classic")
	if best != 300 {
		t.Errorf("Expected best of 300, got %d", best)
	}

	// Lower value must not regress the stored best
	if err := store.SetBest("classic", 50); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	best, _ = store.Best("classic")
	if best != 300 {
		t.Errorf("Expected best to stay 300, got %d", best)
	}

	// Variants are independent
	best, _ = store.Best("mission")
	if best != 0 {
		t.Errorf("Expected 0 for untouched variant, got %d", best)
	}
}

func TestStoreRecordAndTopGames(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.RecordGame("classic", 100, 64, false); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}
	if _, err := store.RecordGame("classic", 50, 32, false); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}
	if _, err := store.RecordGame("classic", 200, 256, true); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	// Different variant
	if _, err := store.RecordGame("mission", 500, 512, false); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	games, err := store.TopGames("classic", 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(games) != 3 {
		t.Errorf("Expected 3 games, got %d", len(games))
	}

	// Should be sorted descending
	if games[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", games[0].Score)
	}
	if games[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", games[1].Score)
	}
	if games[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", games[2].Score)
	}
	if !games[0].Won {
		t.Error("Won flag should survive the round trip")
	}
	if games[0].MaxTile != 256 {
		t.Errorf("Expected max tile 256, got %d", games[0].MaxTile)
	}

	missionGames, err := store.TopGames("mission", 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(missionGames) != 1 {
		t.Errorf("Expected 1 mission game, got %d", len(missionGames))
	}
}

func TestStoreTopGamesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.RecordGame("test", (i+1)*100, 128, false)
	}

	games, err := store.TopGames("test", 3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(games) != 3 {
		t.Errorf("Expected 3 games with limit, got %d", len(games))
	}

	if games[0].Score != 500 || games[1].Score != 400 || games[2].Score != 300 {
		t.Errorf("Games not in expected order: %v", games)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.RecordGame("classic", 100, 64, false)
	store.RecordGame("classic", 300, 256, true)
	store.RecordGame("classic", 200, 128, false)

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.Best != 300 {
		t.Errorf("Expected best of 300, got %d", stats.Best)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average of 200, got %f", stats.AvgScore)
	}
	if stats.Wins != 1 {
		t.Errorf("Expected 1 win, got %d", stats.Wins)
	}

	// An upserted best above any recorded game takes precedence
	store.SetBest("classic", 999)
	stats, err = store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Best != 999 {
		t.Errorf("Expected best of 999 from best_scores, got %d", stats.Best)
	}
}

func TestStoreClearVariant(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.RecordGame("classic", 100, 64, false)
	store.RecordGame("classic", 200, 128, false)
	store.SetBest("classic", 200)
	store.RecordGame("mission", 300, 256, false)
	store.SetBest("mission", 300)

	if err := store.ClearVariant("classic"); err != nil {
		t.Fatalf("ClearVariant() failed: %v", err)
	}

	classicGames, _ := store.TopGames("classic", 10)
	if len(classicGames) != 0 {
		t.Errorf("Expected 0 classic games after clear, got %d", len(classicGames))
	}
	best, _ := store.Best("classic")
	if best != 0 {
		t.Errorf("Expected classic best cleared, got %d", best)
	}

	// The other variant must be untouched
	missionGames, _ := store.TopGames("mission", 10)
	if len(missionGames) != 1 {
		t.Error("Mission games should not be affected by clearing classic")
	}
	best, _ = store.Best("mission")
	if best != 300 {
		t.Errorf("Expected mission best intact, got %d", best)
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
