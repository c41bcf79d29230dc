// Package histstore persists conversion history to SQLite. It implements
// history.Recorder so the engine can stay storage-agnostic.
package histstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/history"
)

// Store writes history records to a SQLite database in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and initializes the schema.
func Open(path string) (*Store, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversions (
		id            TEXT PRIMARY KEY,
		input         TEXT NOT NULL,
		formatted     TEXT NOT NULL,
		epoch_seconds INTEGER NOT NULL,
		ok            INTEGER NOT NULL,
		code          TEXT NOT NULL DEFAULT '',
		message       TEXT NOT NULL DEFAULT '',
		source_zone   TEXT NOT NULL DEFAULT '',
		target_zone   TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_conversions_created ON conversions(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record implements history.Recorder.
func (s *Store) Record(ctx context.Context, rec history.Record) error {
	okInt := 0
	if rec.OK {
		okInt = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions
		 (id, input, formatted, epoch_seconds, ok, code, message, source_zone, target_zone, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Input, rec.Formatted, rec.EpochSeconds, okInt,
		rec.Code, rec.Message, rec.SourceZone, rec.TargetZone,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns up to n records, newest first. n <= 0 means all.
func (s *Store) Recent(ctx context.Context, n int) ([]history.Record, error) {
	query := `SELECT id, input, formatted, epoch_seconds, ok, code, message,
	                 source_zone, target_zone, created_at
	          FROM conversions ORDER BY created_at DESC`
	args := []interface{}{}
	if n > 0 {
		query += ` LIMIT ?`
		args = append(args, n)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var recs []history.Record
	for rows.Next() {
		var rec history.Record
		var okInt int
		var created string
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Formatted, &rec.EpochSeconds,
			&okInt, &rec.Code, &rec.Message, &rec.SourceZone, &rec.TargetZone, &created); err != nil {
			return nil, err
		}
		rec.OK = okInt == 1
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			rec.CreatedAt = ts
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Prune deletes records older than cutoff and reports how many went.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM conversions WHERE created_at < ?`,
		cutoff.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
