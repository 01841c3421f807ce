// Package store is the persistence gateway: a single-file SQLite database
// that owns the schema and executes the statements generated by the linda
// package.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lindacli/linda"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultFilename is the database file used when no other is configured.
const DefaultFilename = "linda.db"

// ErrSchema reports a failure to create or verify the schema.
var ErrSchema = errors.New("schema error")

// ErrStatement reports a failure to execute a statement.
var ErrStatement = errors.New("statement error")

// Schema of the single table. The parser path only ever fills created_at,
// tax and category; duration and description are reserved for future use and
// keep their defaults.
const schema = "CREATE TABLE IF NOT EXISTS `" + linda.TableName + "` (" + `
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  created_at INTEGER NOT NULL,
  tax INTEGER NOT NULL,
  category TEXT NOT NULL,
  duration INTEGER DEFAULT 0,
  description TEXT
)`

// Store is a handle on the database file. It is exclusively owned by the
// current run; no locking discipline beyond SQLite's own is applied.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Init creates the schema if it does not exist yet. It is idempotent:
// calling it on an initialized database is a no-op.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

// Exec executes a generated statement with its bind arguments.
func (s *Store) Exec(stmt linda.Statement) error {
	if _, err := s.db.Exec(stmt.SQL, stmt.Args...); err != nil {
		return fmt.Errorf("%w: %v", ErrStatement, err)
	}
	return nil
}

// Records returns all persisted records in insertion order.
func (s *Store) Records() ([]linda.Record, error) {
	rows, err := s.db.Query("SELECT created_at, tax, category FROM `" + linda.TableName + "` ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatement, err)
	}
	defer rows.Close()

	var records []linda.Record
	for rows.Next() {
		var createdAt int64
		var r linda.Record
		if err := rows.Scan(&createdAt, &r.Tax, &r.Category); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStatement, err)
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatement, err)
	}
	return records, nil
}
