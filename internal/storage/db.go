// Package storage provides SQLite-backed persistence for solve history.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection used to store solve records.
type DB struct {
	*sql.DB
	path string
}

// DefaultPath returns the default database location in the user's home
// directory, creating the containing directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: get home directory: %w", err)
	}
	dir := filepath.Join(home, ".cubesolve")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("storage: create config directory: %w", err)
	}
	return filepath.Join(dir, "cubesolve.db"), nil
}

// Open opens (creating if needed) the SQLite database at path and ensures
// the solves schema exists.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("storage: create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("storage: enable foreign keys: %w", err)
	}
	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("storage: enable WAL mode: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.initSchema(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// OpenDefault opens the database at DefaultPath.
func OpenDefault() (*DB, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string { return db.path }

func (db *DB) initSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id           TEXT PRIMARY KEY,
	scramble     TEXT NOT NULL,
	solution     TEXT NOT NULL,
	move_count   INTEGER NOT NULL,
	nodes        INTEGER NOT NULL,
	phase1_depth INTEGER NOT NULL,
	duration_ms  INTEGER NOT NULL,
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_solves_created_at ON solves(created_at);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("storage: init schema: %w", err)
	}
	return nil
}
