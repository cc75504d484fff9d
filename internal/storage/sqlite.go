// Package storage provides SQLite-based persistence for best scores and
// finished-game history, keyed by game variant.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID         int64
	VariantKey string
	Score      int
	MaxTile    int
	Won        bool
	CreatedAt  time.Time
}

// VariantStats contains aggregated statistics for one variant.
type VariantStats struct {
	VariantKey string
	GamesCount int
	Best       int
	AvgScore   float64
	Wins       int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_scores (
			variant_key TEXT PRIMARY KEY,
			best INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant_key TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_variant ON games(variant_key);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(variant_key, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Best returns the persisted best score for the given variant.
// Returns 0 if no best has been recorded.
func (s *Store) Best(variantKey string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT best FROM best_scores WHERE variant_key = ?",
		variantKey,
	).Scan(&best)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return int(best.Int64), nil
}

// SetBest upserts the best score for the given variant. The stored value
// only ever increases.
func (s *Store) SetBest(variantKey string, best int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (variant_key, best, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(variant_key) DO UPDATE SET
		   best = MAX(best, excluded.best),
		   updated_at = CURRENT_TIMESTAMP`,
		variantKey, best,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set best score: %w", err)
	}
	return nil
}

// RecordGame appends one finished game to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordGame(variantKey string, score, maxTile int, won bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO games (variant_key, score, max_tile, won) VALUES (?, ?, ?, ?)",
		variantKey, score, maxTile, boolToInt(won),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopGames retrieves the top N games for the given variant, ordered by
// score descending.
func (s *Store) TopGames(variantKey string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant_key, score, max_tile, won, created_at
		 FROM games
		 WHERE variant_key = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		variantKey, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var won int
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.VariantKey, &rec.Score, &rec.MaxTile, &won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Won = won != 0
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregated statistics for the given variant.
func (s *Store) Stats(variantKey string) (*VariantStats, error) {
	stats := &VariantStats{VariantKey: variantKey}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(won), 0)
		 FROM games WHERE variant_key = ?`,
		variantKey,
	).Scan(&stats.GamesCount, &stats.Best, &stats.AvgScore, &stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	// The upserted best may exceed any recorded game's score (games are
	// recorded on game over, best on every record move).
	if best, err := s.Best(variantKey); err == nil && best > stats.Best {
		stats.Best = best
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games WHERE variant_key = ? ORDER BY created_at DESC LIMIT 1`,
		variantKey,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// ClearVariant deletes the history and best score for the given variant.
func (s *Store) ClearVariant(variantKey string) error {
	if _, err := s.db.Exec("DELETE FROM games WHERE variant_key = ?", variantKey); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM best_scores WHERE variant_key = ?", variantKey); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a
// formatted string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
