package audit

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store mirrors audit entries into a SQLite database, so the usage log can
// be queried without parsing CSV. The CSV log stays the source of truth.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the audit database at path. An empty path
// disables the mirror.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, nil
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS audit_entries (
			username  TEXT NOT NULL,
			role      TEXT NOT NULL,
			action    TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare audit database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store with an existing database connection.
// Useful for testing with sqlmock.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save inserts one audit entry, with the same values and timestamp string
// that went to the usage log.
func (s *Store) Save(event Event, timestamp string) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO audit_entries (username, role, action, timestamp)
		VALUES (?, ?, ?, ?)
	`,
		event.Username(),
		event.Role(),
		event.Action(),
		timestamp,
	)
	return err
}
