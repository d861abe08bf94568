// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records processing runs in a small SQLite database so
// past output files can be listed and pruned.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/grouchyseafowl/robostripper/pkg/types"
)

const dbFile = "history.db"

// Store manages the run-history SQLite database.
type Store struct {
	db      *sql.DB
	maxList int
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema if needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxList := cfg.MaxList
	if maxList <= 0 {
		maxList = 20
	}

	s := &Store{db: db, maxList: maxList}
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
			input_path TEXT NOT NULL,
			output_path TEXT,
			status TEXT NOT NULL,
			pages INTEGER,
			ocr_pages INTEGER,
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

// Record stores one processing run.
func (s *Store) Record(ctx context.Context, run types.Run) error {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (input_path, output_path, status, pages, ocr_pages, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.InputPath, run.OutputPath, string(run.Status), run.Pages, run.OCRPages,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A limit of 0 uses the
// configured default.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = s.maxList
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, COALESCE(output_path, ''), status, pages, ocr_pages, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var run types.Run
		var status, createdAt string
		if err := rows.Scan(&run.ID, &run.InputPath, &run.OutputPath, &status, &run.Pages, &run.OCRPages, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Status = types.StripStatus(status)
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// PruneSummary holds counts from a prune operation.
type PruneSummary struct {
	Deleted int
	Missing int
	Failed  int
}

// Total returns the number of output files considered.
func (p PruneSummary) Total() int {
	return p.Deleted + p.Missing + p.Failed
}

// Prune deletes every recorded output file and then clears the run rows,
// printing per-file status to w. Files already gone are counted but not
// errors; a file that cannot be removed keeps its rows so a later prune
// can retry.
func (s *Store) Prune(ctx context.Context, w io.Writer) (PruneSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT output_path FROM runs WHERE output_path IS NOT NULL AND output_path != ''`)
	if err != nil {
		return PruneSummary{}, fmt.Errorf("querying output paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return PruneSummary{}, fmt.Errorf("scanning output path: %w", err)
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return PruneSummary{}, err
	}

	var summary PruneSummary
	for _, p := range paths {
		switch err := os.Remove(p); {
		case err == nil:
			fmt.Fprintf(w, "deleted: %s\n", p)
			summary.Deleted++
		case os.IsNotExist(err):
			summary.Missing++
		default:
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, err)
			summary.Failed++
			continue
		}
		if _, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE output_path = ?`, p); err != nil {
			return summary, fmt.Errorf("clearing runs for %s: %w", p, err)
		}
	}

	// Rows with no output file (failed and preview runs) go too.
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE output_path IS NULL OR output_path = ''`); err != nil {
		return summary, fmt.Errorf("clearing fileless runs: %w", err)
	}

	fmt.Fprintf(w, "\npruned %d file(s), %d already gone, %d failed\n",
		summary.Deleted, summary.Missing, summary.Failed)
	return summary, nil
}
