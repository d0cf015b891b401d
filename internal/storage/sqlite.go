// Package storage provides SQLite-based persistence for best scores and the
// capped training-record log. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/NUDC/wego-game/internal/core"
)

// MaxRecords caps the training-record log. Appends beyond the cap evict the
// oldest records first.
const MaxRecords = 200

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Record is one completed training session in the log.
type Record struct {
	ID         int64
	GameID     string
	Difficulty core.Difficulty
	Score      int
	CreatedAt  time.Time
}

// BestEntry is the best score ever achieved for one game.
type BestEntry struct {
	GameID    string
	Score     int
	UpdatedAt time.Time
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

	// Create parent directories
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
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS training_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_records_game_id ON training_records(game_id);
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

// SetBestScoreIfHigher records a new best score for the game, but only when
// it strictly exceeds the stored one (or none exists). The stored best is
// therefore monotonic non-decreasing per game.
func (s *Store) SetBestScoreIfHigher(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (game_id, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > best_scores.score`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// BestScore returns the best score for the given game and whether one exists.
// A broken store reads as "no score yet" rather than failing.
func (s *Store) BestScore(gameID string) (int, bool) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, false
	}
	return score, true
}

// BestScores returns the best score for every game that has one.
func (s *Store) BestScores() (map[string]int, error) {
	rows, err := s.db.Query("SELECT game_id, score FROM best_scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	best := make(map[string]int)
	for rows.Next() {
		var gameID string
		var score int
		if err := rows.Scan(&gameID, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[gameID] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return best, nil
}

// AppendRecord adds a session to the training log, then trims the log to the
// MaxRecords most recent entries, oldest evicted first.
func (s *Store) AppendRecord(gameID string, difficulty core.Difficulty, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO training_records (game_id, difficulty, score) VALUES (?, ?, ?)",
		gameID, string(difficulty), score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot append record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM training_records
		 WHERE id NOT IN (SELECT id FROM training_records ORDER BY id DESC LIMIT ?)`,
		MaxRecords,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot trim records: %w", err)
	}

	return id, nil
}

// Records returns the full training log in insertion order.
func (s *Store) Records() ([]Record, error) {
	return s.queryRecords(
		`SELECT id, game_id, difficulty, score, created_at
		 FROM training_records
		 ORDER BY id ASC`,
	)
}

// RecordsForGame returns the training log for one game in insertion order.
func (s *Store) RecordsForGame(gameID string) ([]Record, error) {
	return s.queryRecords(
		`SELECT id, game_id, difficulty, score, created_at
		 FROM training_records
		 WHERE game_id = ?
		 ORDER BY id ASC`,
		gameID,
	)
}

func (s *Store) queryRecords(query string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var difficulty string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &difficulty, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Difficulty = core.Difficulty(difficulty)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearAll deletes both the best scores and the training log.
func (s *Store) ClearAll() error {
	if _, err := s.db.Exec("DELETE FROM best_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear best scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM training_records"); err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for one game's training log.
type GameStats struct {
	GameID     string
	Sessions   int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// StatsForGame aggregates the training log for one game.
// The best score comes from the monotonic best_scores table, so it survives
// log eviction.
func (s *Store) StatsForGame(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0)
		 FROM training_records WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Sessions, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.BestScore, _ = s.BestScore(gameID)

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM training_records WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the driver returning DATETIME columns as either time.Time
// or a string.
func parseTime(v any) time.Time {
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
