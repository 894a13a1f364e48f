package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	pkgLog "library-circulation/pkg/log"
)

// schema mirrors the in-memory ledger. The partial unique index is the
// storage-level backstop for the one-open-loan-per-book invariant: even a
// buggy writer cannot persist a second open record for a book.
const schema = `
CREATE TABLE IF NOT EXISTS loan_records (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id            INTEGER   NOT NULL,
	user_id            INTEGER   NOT NULL,
	checkout_date      TIMESTAMP NOT NULL,
	due_date           TIMESTAMP NOT NULL,
	actual_return_date TIMESTAMP,
	renewal_count      INTEGER   NOT NULL DEFAULT 0,
	returned           INTEGER   NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_loan_records_open_book
	ON loan_records (book_id) WHERE returned = 0;
`

type Ledger struct {
	db *sql.DB
	l  pkgLog.Logger
}

// Open opens (or creates) the sqlite ledger at path and applies the schema.
func Open(ctx context.Context, path string, l pkgLog.Logger) (*Ledger, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on", path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite ledger: %w", err)
	}
	// Single writer keeps mutations serialized the same way the in-memory
	// ledger's mutex does.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite ledger: %w", err)
	}

	return &Ledger{db: db, l: l}, nil
}

// New wraps an existing database handle; the caller owns its lifecycle.
func New(db *sql.DB, l pkgLog.Logger) *Ledger {
	if db == nil {
		panic("loan/repository/sqlite: db is required")
	}
	return &Ledger{db: db, l: l}
}

// Close releases the database handle.
func (r *Ledger) Close() error {
	return r.db.Close()
}

// dsn returns a method-scoped context string for logging.
func (r *Ledger) dsn(method string) string {
	return fmt.Sprintf("loan/repository/sqlite.%s", method)
}
