package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// migrations are applied in order; the index+1 of each entry is its
// schema version. Entries are never edited once released.
var migrations = [][]string{
	{`CREATE TABLE reports (
		id              TEXT PRIMARY KEY,
		run_id          TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		answer_key      TEXT NOT NULL DEFAULT 'legacy',
		overall         INTEGER NOT NULL,
		recommendation  TEXT NOT NULL,
		answers         TEXT NOT NULL,
		report          TEXT NOT NULL
	)`,
		`CREATE INDEX reports_created_at ON reports (created_at)`,
	},

	{`CREATE TABLE llm_requests (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp       TEXT NOT NULL,
		provider        TEXT NOT NULL,
		model           TEXT NOT NULL,
		purpose         TEXT NOT NULL,
		input_tokens    INTEGER NOT NULL DEFAULT 0,
		output_tokens   INTEGER NOT NULL DEFAULT 0,
		latency_ms      INTEGER NOT NULL DEFAULT 0,
		success         INTEGER NOT NULL,
		error_message   TEXT NOT NULL DEFAULT '',
		request_body    TEXT NOT NULL DEFAULT '',
		response_body   TEXT NOT NULL DEFAULT ''
	)`,
		`CREATE INDEX llm_requests_timestamp ON llm_requests (timestamp)`,
	},
}

// migrate brings the schema up to date inside a single transaction.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (
		id      INTEGER PRIMARY KEY CHECK (id = 1),
		version INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRowContext(ctx, `SELECT version FROM schema_version WHERE id = 1`).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		current = 0
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}

	for v := current; v < len(migrations); v++ {
		for _, stmt := range migrations[v] {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply migration %d: %w", v+1, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_version (id, version) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version = excluded.version`, len(migrations),
	); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

// SchemaVersion reports the applied migration count.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, `SELECT version FROM schema_version WHERE id = 1`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}
