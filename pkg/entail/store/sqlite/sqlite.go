package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/store"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS explanations (
	id TEXT PRIMARY KEY,
	premise TEXT NOT NULL,
	hypothesis TEXT NOT NULL,
	interpreter TEXT,
	prediction TEXT NOT NULL,
	interpretation TEXT,
	premise_topk INTEGER NOT NULL DEFAULT 3,
	hypothesis_topk INTEGER NOT NULL DEFAULT 3,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS explanations_created_at ON explanations(created_at);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	// Databases created before the K columns existed get them added.
	for _, col := range []string{"premise_topk", "hypothesis_topk"} {
		if err := addColumnIfMissing(ctx, db, "explanations", col, "INTEGER NOT NULL DEFAULT 3"); err != nil {
			return err
		}
	}
	return nil
}

func addColumnIfMissing(ctx context.Context, db *sql.DB, table, column, decl string) error {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&n)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	if n > 0 {
		return nil
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl)); err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}

// SaveExplanation inserts or replaces an explanation keyed by ID.
func (s *sqliteStore) SaveExplanation(ctx context.Context, r store.Record) error {
	if r.ID == "" {
		return fmt.Errorf("%w: explanation id required", internalerr.ErrInvalidInput)
	}
	const stmt = `
INSERT INTO explanations (id, premise, hypothesis, interpreter, prediction, interpretation, premise_topk, hypothesis_topk, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	premise=excluded.premise,
	hypothesis=excluded.hypothesis,
	interpreter=excluded.interpreter,
	prediction=excluded.prediction,
	interpretation=excluded.interpretation,
	premise_topk=excluded.premise_topk,
	hypothesis_topk=excluded.hypothesis_topk;
`
	_, err := s.db.ExecContext(ctx, stmt,
		r.ID,
		r.Premise,
		r.Hypothesis,
		r.Interpreter,
		r.Prediction,
		r.Interpretation,
		r.PremiseTopK,
		r.HypothesisTopK,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

// GetExplanation loads one explanation.
func (s *sqliteStore) GetExplanation(ctx context.Context, id string) (store.Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, premise, hypothesis, interpreter, prediction, interpretation, premise_topk, hypothesis_topk, created_at
FROM explanations
WHERE id = ?;
`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Record{}, fmt.Errorf("explanation %s: %w", id, internalerr.ErrNotFound)
	}
	return r, err
}

// RecentExplanations returns up to k explanations, newest first.
func (s *sqliteStore) RecentExplanations(ctx context.Context, k int) ([]store.Record, error) {
	if k <= 0 {
		k = 10
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, premise, hypothesis, interpreter, prediction, interpretation, premise_topk, hypothesis_topk, created_at
FROM explanations
ORDER BY created_at DESC, id DESC
LIMIT ?;
`, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []store.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (store.Record, error) {
	var (
		r                           store.Record
		interpreter, interpretation sql.NullString
		created                     string
	)
	if err := sc.Scan(&r.ID, &r.Premise, &r.Hypothesis, &interpreter, &r.Prediction, &interpretation, &r.PremiseTopK, &r.HypothesisTopK, &created); err != nil {
		return store.Record{}, err
	}
	r.Interpreter = interpreter.String
	r.Interpretation = interpretation.String
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return store.Record{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	r.CreatedAt = t
	return r, nil
}
