// Package database stores rendered story snapshots in SQLite so renderer
// changes can be checked against a recorded baseline.
package database

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	_ "modernc.org/sqlite"
)

// DBPath returns the default path of the snapshot database
func DBPath() string {
	return filepath.Join("data", "alertbanner.db")
}

const schema = `
	CREATE TABLE IF NOT EXISTS snapshots (
		story_id   TEXT NOT NULL,
		format     TEXT NOT NULL,
		digest     TEXT NOT NULL,
		body       TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (story_id, format)
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_updated ON snapshots(updated_at);
`

// EnsureSchema creates the snapshot tables when they are missing. Existing
// rows are kept.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "creating snapshots table")
	}
	return nil
}

// Store reads and writes snapshots
type Store struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "set WAL mode")
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}
