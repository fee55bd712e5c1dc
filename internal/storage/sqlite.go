// Package storage provides the SQLite results ledger: one row per finished
// game. Games are never restored from it.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID         int64
	Winner     tictactoe.Mark
	Moves      int    // Number of moves in the winning branch
	Transcript string // Cell indices in play order, e.g. "0,3,1,4,2"
	Session    string // Who played it: local user or SSH session
	CreatedAt  time.Time
}

// Tally aggregates the ledger.
type Tally struct {
	Games      int
	XWins      int
	OWins      int
	AvgMoves   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandPath(dbPath)

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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner TEXT NOT NULL,
			moves INTEGER NOT NULL,
			transcript TEXT NOT NULL,
			session TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_winner ON results(winner);
		CREATE INDEX IF NOT EXISTS idx_results_session ON results(session);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Winner == tictactoe.Empty {
		return 0, errors.New("storage: result has no winner")
	}

	res, err := s.db.Exec(
		"INSERT INTO results (winner, moves, transcript, session) VALUES (?, ?, ?, ?)",
		r.Winner.String(), r.Moves, r.Transcript, r.Session,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, winner, moves, transcript, session, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var winner string
		var createdAt any
		if err := rows.Scan(&r.ID, &winner, &r.Moves, &r.Transcript, &r.Session, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Winner = parseMark(winner)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Tally returns win counts and averages over the whole ledger.
func (s *Store) Tally() (Tally, error) {
	var t Tally
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'X' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'O' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(moves), 0),
		        MAX(created_at)
		 FROM results`,
	).Scan(&t.Games, &t.XWins, &t.OWins, &t.AvgMoves, &lastPlayed)
	if err != nil {
		return t, fmt.Errorf("storage: cannot tally results: %w", err)
	}

	t.LastPlayed = parseTime(lastPlayed)
	return t, nil
}

// ClearResults deletes the whole ledger.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseMark converts a stored winner back to a mark.
func parseMark(s string) tictactoe.Mark {
	switch s {
	case "X":
		return tictactoe.X
	case "O":
		return tictactoe.O
	default:
		return tictactoe.Empty
	}
}

// parseTime handles both time.Time and string datetimes from the driver.
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
