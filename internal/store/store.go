// Package store provides the SQLite-backed persistent song catalog.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rsperl/google-drive-music-indexer/internal/catalog"
)

const schemaSQL = `
CREATE TABLE songs (
	artist      TEXT NOT NULL DEFAULT '' COLLATE NOCASE,
	name        TEXT NOT NULL DEFAULT '' COLLATE NOCASE,
	instrument  TEXT NOT NULL DEFAULT '' COLLATE NOCASE,
	location    TEXT NOT NULL DEFAULT '',
	link        TEXT NOT NULL DEFAULT '',
	document_id TEXT PRIMARY KEY
);
`

// Catalog defines the persistence operations the run depends on.
// Consumers should depend on this interface rather than the concrete *Store
// type to facilitate testing with fakes.
type Catalog interface {
	Reset() error
	Upsert(e catalog.Entry) error
	Commit() error
	AllOrdered() ([]catalog.Entry, error)
	Close() error
}

// Store wraps a sql.DB holding the songs table. Upserts accumulate in a
// transaction that Commit makes durable.
type Store struct {
	conn *sql.DB
	tx   *sql.Tx
}

// Open opens (or creates) the SQLite database. The songs table is not
// touched until Reset is called.
func Open(dsn string) (*Store, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Reset drops and recreates the songs table, discarding every prior entry.
// Any uncommitted upserts are rolled back first.
func (s *Store) Reset() error {
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
	}
	if _, err := s.conn.Exec(`DROP TABLE IF EXISTS songs`); err != nil {
		return fmt.Errorf("store: drop songs table: %w", err)
	}
	if _, err := s.conn.Exec(schemaSQL); err != nil {
		return fmt.Errorf("store: create songs table: %w", err)
	}
	return nil
}

// Upsert inserts or replaces the entry keyed by its document identifier.
// Repeated upserts of the same identifier leave the last write in place.
func (s *Store) Upsert(e catalog.Entry) error {
	if s.tx == nil {
		tx, err := s.conn.Begin()
		if err != nil {
			return fmt.Errorf("store: begin tx: %w", err)
		}
		s.tx = tx
	}
	_, err := s.tx.Exec(`
		INSERT INTO songs (artist, name, instrument, location, link, document_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_id) DO UPDATE SET
			artist     = excluded.artist,
			name       = excluded.name,
			instrument = excluded.instrument,
			location   = excluded.location,
			link       = excluded.link
	`, e.Artist, e.Name, e.Instrument, e.Location, e.Link, e.DocumentID)
	if err != nil {
		return fmt.Errorf("store: upsert %s: %w", e.DocumentID, err)
	}
	return nil
}

// Commit makes every upsert since the last commit visible to readers.
// Calling Commit with no pending upserts is a no-op.
func (s *Store) Commit() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

// AllOrdered returns every committed entry sorted by (artist, name,
// instrument). The columns collate NOCASE, so the ordering is
// case-insensitive on all three keys.
func (s *Store) AllOrdered() ([]catalog.Entry, error) {
	rows, err := s.conn.Query(`
		SELECT artist, name, instrument, location, link, document_id
		FROM songs
		ORDER BY artist, name, instrument
	`)
	if err != nil {
		return nil, fmt.Errorf("store: query songs: %w", err)
	}
	defer rows.Close()

	var out []catalog.Entry
	for rows.Next() {
		var e catalog.Entry
		if err := rows.Scan(&e.Artist, &e.Name, &e.Instrument, &e.Location, &e.Link, &e.DocumentID); err != nil {
			return nil, fmt.Errorf("store: scan song: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close rolls back any uncommitted upserts and closes the database.
func (s *Store) Close() error {
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
	}
	return s.conn.Close()
}

// Verify *Store satisfies Catalog at compile time.
var _ Catalog = (*Store)(nil)
