// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists conversion runs in a local SQLite database.
// Implements: prd005-history (R1-R4);
//
//	docs/ARCHITECTURE § Run History.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/img2pdf/pkg/types"
)

const dbFile = "history.db"

// defaultLimit caps a listing when the caller does not ask for one.
const defaultLimit = 20

// Run is one recorded conversion.
type Run struct {
	ID        int64         `json:"id" yaml:"id"`
	Folder    string        `json:"folder" yaml:"folder"`
	Output    string        `json:"output" yaml:"output"`
	Engine    types.Engine  `json:"engine" yaml:"engine"`
	Pages     int           `json:"pages" yaml:"pages"`
	Failed    int           `json:"failed" yaml:"failed"`
	Bytes     int64         `json:"bytes" yaml:"bytes"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the per-user database location,
// <user config dir>/img2pdf/history.db.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, "img2pdf", dbFile), nil
}

// Open opens or creates the history database at path, creating the
// schema and any missing parent directories (R1.1, R1.2).
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			folder TEXT NOT NULL,
			output TEXT NOT NULL,
			engine TEXT NOT NULL,
			pages INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			bytes INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one run (R2.1). A zero CreatedAt is stamped with the
// current time.
func (s *Store) Record(ctx context.Context, run Run) error {
	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (folder, output, engine, pages, failed, bytes, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Folder, run.Output, string(run.Engine), run.Pages, run.Failed,
		run.Bytes, run.Duration.Milliseconds(), created.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first (R3.1, R3.2).
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, folder, output, engine, pages, failed, bytes, duration_ms, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			engine     string
			durationMS int64
			created    string
		)
		if err := rows.Scan(&r.ID, &r.Folder, &r.Output, &engine,
			&r.Pages, &r.Failed, &r.Bytes, &durationMS, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		r.Engine = types.Engine(engine)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		if ts, parseErr := time.Parse(time.RFC3339, created); parseErr == nil {
			r.CreatedAt = ts
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Clear deletes all recorded runs and returns how many were removed (R4.1).
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared runs: %w", err)
	}
	return n, nil
}
