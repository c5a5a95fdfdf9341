package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SlotRepository stores opaque values under string keys in a SQL table.
// Each Put overwrites the previous value; there is no versioning.
type SlotRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewSlotRepository creates a repository over a migrated SQLite database
func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{db: db, dialect: DialectSQLite}
}

// NewPostgresSlotRepository creates a repository over a migrated PostgreSQL database
func NewPostgresSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{db: db, dialect: DialectPostgres}
}

// Get returns the value stored under key, or ErrSlotNotFound
func (r *SlotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := "SELECT value FROM slots WHERE key = ?"
	if r.dialect == DialectPostgres {
		query = "SELECT value FROM slots WHERE key = $1"
	}

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return value, nil
}

// Put overwrites the value stored under key
func (r *SlotRepository) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if r.dialect == DialectPostgres {
		query = `
		INSERT INTO slots (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	}

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Missing keys are not an error.
func (r *SlotRepository) Delete(ctx context.Context, key string) error {
	query := "DELETE FROM slots WHERE key = ?"
	if r.dialect == DialectPostgres {
		query = "DELETE FROM slots WHERE key = $1"
	}

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}
	return nil
}
