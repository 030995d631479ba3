package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
)

// Ensure SQLite implements Gateway
var _ Gateway = (*SQLite)(nil)

const stateKey = "app-state"

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// SQLite stores the state blob in a single-row key-value table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at the given path and applies the
// schema. Parent directories are created as needed.
func NewSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load reads and decodes the state blob. Returns (nil, nil) on first run.
func (s *SQLite) Load(ctx context.Context) (*State, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, stateKey,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	var state State
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return &state, nil
}

// Save encodes and upserts the state blob.
func (s *SQLite) Save(ctx context.Context, state *State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, stateKey, blob, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
