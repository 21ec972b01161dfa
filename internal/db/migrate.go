package db

import (
	"context"
	"database/sql"
	"fmt"
)

// All contains the ordered list of migrations to apply.
var All = []string{
	`CREATE TABLE documents (
		id          INTEGER PRIMARY KEY,
		doc_name    TEXT UNIQUE NOT NULL,
		source_path TEXT NOT NULL,
		target_path TEXT NOT NULL,
		created_at  DATETIME NOT NULL DEFAULT (datetime('now')),
		built_at    DATETIME NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE scenarios (
		id          INTEGER PRIMARY KEY,
		document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		name        TEXT NOT NULL
	)`,
	`CREATE TABLE builds (
		id         TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		generated  INTEGER NOT NULL,
		skipped    INTEGER NOT NULL,
		failed     INTEGER NOT NULL
	)`,
}

// Migrate brings db up to len(All), one transaction per migration.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var current int
	err := db.QueryRowContext(ctx, `SELECT version FROM schema_version`).Scan(&current)
	if err == sql.ErrNoRows {
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return fmt.Errorf("initializing schema version: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(All); i++ {
		if err := apply(ctx, db, i); err != nil {
			return err
		}
	}
	return nil
}

func apply(ctx context.Context, db *sql.DB, i int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w", i+1, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, All[i]); err != nil {
		return fmt.Errorf("migration %d failed: %w", i+1, err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE schema_version SET version = ?`, i+1); err != nil {
		return fmt.Errorf("updating schema version to %d: %w", i+1, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w", i+1, err)
	}
	return nil
}
