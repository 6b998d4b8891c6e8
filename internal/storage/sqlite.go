// Package storage provides SQLite-based persistence for session history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The history database is separate from the JSON leaderboard: the leaderboard
// keeps only the top scores per difficulty, while the history keeps every
// finished session with its accuracy breakdown.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/akovalov/tui-aimtrainer/internal/core"
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// SessionEntry is one recorded training session.
type SessionEntry struct {
	ID        int64
	Tier      string
	Score     int
	Hits      int
	Misses    int
	Duration  int // Seconds
	CreatedAt time.Time
}

// Accuracy returns the hit fraction of the session's clicks, or 0 when no
// clicks were made.
func (e SessionEntry) Accuracy() float64 {
	total := e.Hits + e.Misses
	if total == 0 {
		return 0
	}
	return float64(e.Hits) / float64(total)
}

// TierStats contains aggregated statistics for one difficulty.
type TierStats struct {
	Tier         string
	SessionCount int
	BestScore    int
	AvgScore     float64
	TotalHits    int64
	TotalMisses  int64
	LastPlayed   time.Time
}

// Accuracy returns the overall hit fraction across all recorded sessions.
func (s TierStats) Accuracy() float64 {
	total := s.TotalHits + s.TotalMisses
	if total == 0 {
		return 0
	}
	return float64(s.TotalHits) / float64(total)
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tier TEXT NOT NULL,
			score INTEGER NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_tier ON sessions(tier);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(tier, score DESC);
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

// SaveSession records one finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(summary core.SessionSummary) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (tier, score, hits, misses, duration_secs) VALUES (?, ?, ?, ?, ?)",
		summary.Tier, summary.Score, summary.Hits, summary.Misses, int(summary.Duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopSessions retrieves the top N sessions for the given tier.
// Results are ordered by score descending.
func (s *Store) TopSessions(tier string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, tier, score, hits, misses, duration_secs, created_at
		 FROM sessions
		 WHERE tier = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		tier, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// RecentSessions retrieves the most recent sessions across all tiers.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, tier, score, hits, misses, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// scanSessions reads session rows into entries.
func scanSessions(rows *sql.Rows) ([]SessionEntry, error) {
	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Tier, &e.Score, &e.Hits, &e.Misses, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseDBTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseDBTime handles the datetime column arriving as either time.Time or
// string depending on how the row was written.
func parseDBTime(v any) time.Time {
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

// BestScore returns the highest recorded score for the given tier.
// Returns 0 if no sessions exist.
func (s *Store) BestScore(tier string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE tier = ?",
		tier,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// GetTierStats retrieves aggregated statistics for one difficulty.
func (s *Store) GetTierStats(tier string) (*TierStats, error) {
	stats := &TierStats{Tier: tier}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(hits), 0), COALESCE(SUM(misses), 0)
		 FROM sessions WHERE tier = ?`,
		tier,
	).Scan(&stats.SessionCount, &stats.BestScore, &stats.AvgScore, &stats.TotalHits, &stats.TotalMisses)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get tier stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE tier = ? ORDER BY created_at DESC LIMIT 1`,
		tier,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseDBTime(lastPlayed)
	}

	return stats, nil
}

// ClearSessions deletes all sessions for the given tier, or every session
// when tier is empty.
func (s *Store) ClearSessions(tier string) error {
	var err error
	if tier == "" {
		_, err = s.db.Exec("DELETE FROM sessions")
	} else {
		_, err = s.db.Exec("DELETE FROM sessions WHERE tier = ?", tier)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
