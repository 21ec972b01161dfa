package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DocumentRecord is one generated feature file.
type DocumentRecord struct {
	Name       string
	SourcePath string
	TargetPath string
	Scenarios  []string
}

// BuildRecord summarizes one build run.
type BuildRecord struct {
	ID        string
	StartedAt time.Time
	Generated int
	Skipped   int
	Failed    int
}

// ScenarioRow is a scenario as listed by Scenarios.
type ScenarioRow struct {
	Document string
	Position int
	Name     string
}

// DocumentSummary is a recorded document with its scenario count.
type DocumentSummary struct {
	Name       string
	TargetPath string
	Scenarios  int
}

// Store records which documents have been built and what they produced.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// IsRegistered reports whether name has been built before.
func (s *Store) IsRegistered(ctx context.Context, name string) (bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM documents WHERE doc_name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying %s: %w", name, err)
	}
	return true, nil
}

// RecordDocument upserts the document and replaces its scenarios.
func (s *Store) RecordDocument(ctx context.Context, rec DocumentRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (doc_name, source_path, target_path)
		VALUES (?, ?, ?)
		ON CONFLICT(doc_name) DO UPDATE SET
			source_path = excluded.source_path,
			target_path = excluded.target_path,
			built_at = datetime('now')
	`, rec.Name, rec.SourcePath, rec.TargetPath)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", rec.Name, err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM documents WHERE doc_name = ?`, rec.Name).Scan(&id); err != nil {
		return fmt.Errorf("querying %s: %w", rec.Name, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM scenarios WHERE document_id = ?`, id); err != nil {
		return fmt.Errorf("clearing scenarios of %s: %w", rec.Name, err)
	}
	for i, name := range rec.Scenarios {
		if _, err := tx.ExecContext(ctx, `INSERT INTO scenarios (document_id, position, name) VALUES (?, ?, ?)`, id, i+1, name); err != nil {
			return fmt.Errorf("inserting scenario %q: %w", name, err)
		}
	}

	return tx.Commit()
}

func (s *Store) RecordBuild(ctx context.Context, rec BuildRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO builds (id, started_at, generated, skipped, failed) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.StartedAt.UTC().Format(time.RFC3339), rec.Generated, rec.Skipped, rec.Failed)
	if err != nil {
		return fmt.Errorf("inserting build %s: %w", rec.ID, err)
	}
	return nil
}

// LastBuild returns the most recent build, or nil when none was recorded.
func (s *Store) LastBuild(ctx context.Context) (*BuildRecord, error) {
	var rec BuildRecord
	var started string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, generated, skipped, failed
		FROM builds ORDER BY started_at DESC, rowid DESC LIMIT 1
	`).Scan(&rec.ID, &started, &rec.Generated, &rec.Skipped, &rec.Failed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying last build: %w", err)
	}
	rec.StartedAt, err = time.Parse(time.RFC3339, started)
	if err != nil {
		return nil, fmt.Errorf("parsing build time %q: %w", started, err)
	}
	return &rec, nil
}

// Scenarios lists recorded scenarios ordered by document and position. An
// empty doc lists all documents.
func (s *Store) Scenarios(ctx context.Context, doc string) ([]ScenarioRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.doc_name, s.position, s.name
		FROM scenarios s
		JOIN documents d ON s.document_id = d.id
		WHERE ? = '' OR d.doc_name = ?
		ORDER BY d.doc_name, s.position
	`, doc, doc)
	if err != nil {
		return nil, fmt.Errorf("querying scenarios: %w", err)
	}
	defer rows.Close()

	var out []ScenarioRow
	for rows.Next() {
		var r ScenarioRow
		if err := rows.Scan(&r.Document, &r.Position, &r.Name); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return out, nil
}

// Documents lists recorded documents ordered by name.
func (s *Store) Documents(ctx context.Context) ([]DocumentSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.doc_name, d.target_path, COUNT(s.id)
		FROM documents d
		LEFT JOIN scenarios s ON s.document_id = d.id
		GROUP BY d.id
		ORDER BY d.doc_name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var out []DocumentSummary
	for rows.Next() {
		var d DocumentSummary
		if err := rows.Scan(&d.Name, &d.TargetPath, &d.Scenarios); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return out, nil
}

// Counts returns the number of documents and scenarios recorded.
func (s *Store) Counts(ctx context.Context) (docs, scenarios int, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&docs); err != nil {
		return 0, 0, fmt.Errorf("counting documents: %w", err)
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenarios`).Scan(&scenarios); err != nil {
		return 0, 0, fmt.Errorf("counting scenarios: %w", err)
	}
	return docs, scenarios, nil
}

// TargetPath returns the feature file recorded for doc.
func (s *Store) TargetPath(ctx context.Context, doc string) (string, error) {
	var path string
	err := s.db.QueryRowContext(ctx, `SELECT target_path FROM documents WHERE doc_name = ?`, doc).Scan(&path)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("document %s not found", doc)
	}
	if err != nil {
		return "", fmt.Errorf("querying %s: %w", doc, err)
	}
	return path, nil
}
