// File: internal/stack/state_sqlite.go
// Brief: SQLite-backed run history store.

package stack

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// stateRelPath lives under a dot-prefixed directory so discovery never
// registers it.
const stateRelPath = ".stackctl/state.sqlite"

// StateStore records lifecycle batches under the registry root. Recording
// is advisory: callers treat open/write failures as warnings, never as
// command failures.
type StateStore struct {
	db   *sql.DB
	path string
}

// StatePath returns where the run history DB for root lives.
func StatePath(root string) string {
	return filepath.Join(root, stateRelPath)
}

// OpenStateStore opens (creating if needed) the run history DB for root.
func OpenStateStore(root string) (*StateStore, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(absRoot, stateRelPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &StateStore{db: db, path: path}
	if err := s.initSchema(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *StateStore) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	command     TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	total       INTEGER NOT NULL,
	succeeded   INTEGER NOT NULL,
	failed      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_stacks (
	run_id TEXT NOT NULL REFERENCES runs(id),
	stack  TEXT NOT NULL,
	ok     INTEGER NOT NULL,
	error  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS run_stacks_run ON run_stacks(run_id);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *StateStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun persists one batch and its per-stack outcomes.
func (s *StateStore) RecordRun(ctx context.Context, rec RunRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	succeeded, failed := 0, 0
	for _, r := range rec.Results {
		if r.OK {
			succeeded++
		} else {
			failed++
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, command, started_at, finished_at, total, succeeded, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Command,
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.FinishedAt.UTC().Format(time.RFC3339),
		len(rec.Results), succeeded, failed,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, r := range rec.Results {
		ok := 0
		if r.OK {
			ok = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_stacks (run_id, stack, ok, error) VALUES (?, ?, ?, ?)`,
			rec.ID, r.Stack, ok, r.Err,
		); err != nil {
			return fmt.Errorf("insert run stack: %w", err)
		}
	}
	return tx.Commit()
}

// RecentRuns lists up to limit batches, newest first.
func (s *StateStore) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, command, started_at, total, succeeded, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Command, &r.StartedAt, &r.Total, &r.Succeeded, &r.Failed); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
