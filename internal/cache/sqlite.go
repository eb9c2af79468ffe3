package cache

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/naatacademy/kalaamdesk/internal/record"
)

//go:embed schema.sql
var schemaSQL string

// SQLite is a durable Cache backed by a single SQLite file. Every Set
// rewrites the collection document and appends a revision row in one
// transaction, so a bulk replace can always be audited and recovered.
type SQLite struct {
	db *sql.DB
}

// Open creates or opens the cache database at the given path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under the single-operator design.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the named collection, or an empty collection when the name
// was never written.
func (s *SQLite) Get(name string) (record.Collection, error) {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM collections WHERE name = ?`, name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return record.Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", name, err)
	}

	col, err := record.DecodeDocument([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("get %q: stored document corrupt: %w", name, err)
	}
	return col, nil
}

// Set replaces the named collection and appends a revision row. Both writes
// commit together or not at all.
func (s *SQLite) Set(name string, c record.Collection) error {
	doc, err := record.EncodeDocument(c)
	if err != nil {
		return fmt.Errorf("set %q: %w", name, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set %q: %w", name, err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO collections (name, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at
	`, name, string(doc), now)
	if err != nil {
		return fmt.Errorf("set %q: %w", name, err)
	}

	revID := uuid.Must(uuid.NewV7()).String()
	_, err = tx.Exec(`
		INSERT INTO revisions (id, name, doc, saved_at) VALUES (?, ?, ?, ?)
	`, revID, name, string(doc), now)
	if err != nil {
		return fmt.Errorf("set %q: record revision: %w", name, err)
	}

	return tx.Commit()
}

// Revision describes one saved version of a collection.
type Revision struct {
	ID      string
	Name    string
	SavedAt string
}

// Revisions lists the saved revisions of a collection, newest first.
// UUIDv7 revision ids are time-sortable, so ordering by id orders by
// creation time.
func (s *SQLite) Revisions(name string) ([]Revision, error) {
	rows, err := s.db.Query(`
		SELECT id, name, saved_at FROM revisions WHERE name = ? ORDER BY id DESC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("revisions %q: %w", name, err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.Name, &r.SavedAt); err != nil {
			return nil, fmt.Errorf("revisions %q: %w", name, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RevisionDocument returns the collection a revision saved.
func (s *SQLite) RevisionDocument(id string) (record.Collection, error) {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM revisions WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("revision %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("revision %q: %w", id, err)
	}
	return record.DecodeDocument([]byte(doc))
}
