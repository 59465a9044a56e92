// Package store persists theme collections: a SQLite-backed theme
// library and plain JSON/stylesheet files for interchange.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection used by the theme library.
type DB struct {
	sql *sql.DB
}

// Open opens (and creates if needed) the library database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", path, err)
	}
	return &DB{sql: db}, nil
}

// OpenInMemory opens a private in-memory database, used by tests.
func OpenInMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	// A single connection keeps every statement on the same memory db.
	db.SetMaxOpenConns(1)
	return &DB{sql: db}, nil
}

// Migrate creates the schema if it does not exist yet.
func (d *DB) Migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS themes (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    format     TEXT NOT NULL,
    payload    TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (format, name)
);
CREATE INDEX IF NOT EXISTS idx_themes_format ON themes (format);
`
	if _, err := d.sql.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate theme schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.sql.Close()
}
