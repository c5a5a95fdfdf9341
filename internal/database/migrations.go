package database

import (
	"context"
	"database/sql"
)

// Dialect selects the SQL flavor for schema and queries
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// runMigrations creates the slot schema if it does not exist
func runMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`
	if dialect == DialectPostgres {
		schema = `
		CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	}

	_, err := db.ExecContext(ctx, schema)
	return err
}
