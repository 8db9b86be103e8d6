// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished session.
type Run struct {
	ID           int64
	RunID        string // UUID, generated on save when empty
	Player       string // "human" or the autopilot policy name
	Preset       string
	Seed         int64
	Score        int
	HighestCombo int
	Level        int
	Duration     time.Duration
	CreatedAt    time.Time
}

// Stats aggregates every stored run.
type Stats struct {
	Runs         int
	BestScore    int
	AverageScore float64
	BestCombo    int
	MaxLevel     int
	TotalPlayed  time.Duration
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT 'human',
			preset TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			highest_combo INTEGER NOT NULL DEFAULT 1,
			level INTEGER NOT NULL DEFAULT 1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_preset ON runs(preset, score DESC);
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

const runColumns = `id, run_id, player, preset, seed, score, highest_combo, level, duration_ms, created_at`

// SaveRun records a finished run and fills in its ID, RunID and CreatedAt.
func (s *Store) SaveRun(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.Player == "" {
		run.Player = "human"
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, player, preset, seed, score, highest_combo, level, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Player, run.Preset, run.Seed, run.Score,
		run.HighestCombo, run.Level, run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	run.ID = id

	var createdAt any
	if err := s.db.QueryRow("SELECT created_at FROM runs WHERE id = ?", id).Scan(&createdAt); err != nil {
		return fmt.Errorf("storage: cannot read back run: %w", err)
	}
	run.CreatedAt = parseTime(createdAt)
	return nil
}

// RunByID retrieves a run by its UUID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// TopRuns retrieves the best runs, ordered by score descending.
// An empty preset matches every preset.
func (s *Store) TopRuns(preset string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE (? = '' OR preset = ?)
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		preset, preset, limit,
	)
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// HighScore returns the best score for a preset, or over all presets if
// preset is empty. Returns 0 if no runs exist.
func (s *Store) HighScore(preset string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE (? = '' OR preset = ?)",
		preset, preset,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates all runs.
func (s *Store) Stats() (Stats, error) {
	var (
		st                        Stats
		best, combo, level, total sql.NullInt64
		avg                       sql.NullFloat64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score), MAX(highest_combo), MAX(level), SUM(duration_ms)
		 FROM runs`,
	).Scan(&st.Runs, &best, &avg, &combo, &level, &total)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.BestScore = int(best.Int64)
	st.AverageScore = avg.Float64
	st.BestCombo = int(combo.Int64)
	st.MaxLevel = int(level.Int64)
	st.TotalPlayed = time.Duration(total.Int64) * time.Millisecond
	return st, nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run        Run
		durationMs int64
		createdAt  any
	)
	err := sc.Scan(
		&run.ID,
		&run.RunID,
		&run.Player,
		&run.Preset,
		&run.Seed,
		&run.Score,
		&run.HighestCombo,
		&run.Level,
		&durationMs,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}

	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
