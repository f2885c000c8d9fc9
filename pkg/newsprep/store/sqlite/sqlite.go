// Package sqlite implements store.Store on a single SQLite file, the
// durable form of a pipeline run's artifacts.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/newsprep/pkg/newsprep/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite artifact store with WAL mode
// enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL keeps readers (corpus-stats) unblocked while a run writes.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	config_yaml TEXT
);

CREATE TABLE IF NOT EXISTS docs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	label INTEGER NOT NULL,
	subject TEXT,
	published_at TEXT,
	clean_text TEXT NOT NULL,
	split TEXT NOT NULL,
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_docs_run_split ON docs(run_id, split);

CREATE TABLE IF NOT EXISTS vocab (
	run_id TEXT NOT NULL,
	term TEXT NOT NULL,
	idx INTEGER NOT NULL,
	df INTEGER NOT NULL,
	idf REAL NOT NULL,
	PRIMARY KEY(run_id, term),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) CreateRun(ctx context.Context, r store.Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, config_yaml) VALUES (?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(time.RFC3339), r.ConfigYAML)
	if err != nil {
		return fmt.Errorf("create run %s: %w", r.ID, err)
	}
	return nil
}

func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	var r store.Run
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, config_yaml FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &createdAt, &r.ConfigYAML)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return r, true, nil
}

func (s *sqliteStore) ListRuns(ctx context.Context) ([]store.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, config_yaml FROM runs ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.ConfigYAML); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *sqliteStore) InsertDocs(ctx context.Context, runID string, docs []store.Doc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO docs (run_id, label, subject, published_at, clean_text, split)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range docs {
		_, err := stmt.ExecContext(ctx, runID, d.Label, d.Subject,
			d.PublishedAt.UTC().Format(time.RFC3339), d.CleanText, d.Split)
		if err != nil {
			return fmt.Errorf("insert doc: %w", err)
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) GetDocs(ctx context.Context, runID, split string) ([]store.Doc, error) {
	query := `SELECT id, run_id, label, subject, published_at, clean_text, split
	          FROM docs WHERE run_id = ?`
	args := []interface{}{runID}
	if split != "" {
		query += ` AND split = ?`
		args = append(args, split)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []store.Doc
	for rows.Next() {
		var d store.Doc
		var publishedAt string
		if err := rows.Scan(&d.ID, &d.RunID, &d.Label, &d.Subject,
			&publishedAt, &d.CleanText, &d.Split); err != nil {
			return nil, err
		}
		d.PublishedAt, _ = time.Parse(time.RFC3339, publishedAt)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (s *sqliteStore) SaveVocabulary(ctx context.Context, runID string, terms []store.VocabTerm) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO vocab (run_id, term, idx, df, idf) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range terms {
		if _, err := stmt.ExecContext(ctx, runID, t.Term, t.Index, t.DF, t.IDF); err != nil {
			return fmt.Errorf("insert vocab term %q: %w", t.Term, err)
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) GetVocabulary(ctx context.Context, runID string) ([]store.VocabTerm, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT term, idx, df, idf FROM vocab WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []store.VocabTerm
	for rows.Next() {
		var t store.VocabTerm
		if err := rows.Scan(&t.Term, &t.Index, &t.DF, &t.IDF); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}
