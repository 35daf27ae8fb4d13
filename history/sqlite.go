package history

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is a history log persisted to a SQLite database. It keeps
// the same bounded add/previous/next contract as Ring; navigation runs
// against an in-memory ring loaded at open time, and every added line is
// written through to the database. Retention is bounded at max rows.
type SQLiteStore struct {
	db       *sql.DB
	ring     *Ring
	max      int
	writeErr error
}

// OpenSQLite opens (creating if needed) a history database at path and
// loads the newest max lines into memory for navigation.
func OpenSQLite(path string, max int) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}

	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		line TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}

	s := &SQLiteStore{db: db, ring: NewRing(max), max: max}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// load fills the navigation ring with the newest max lines, oldest first.
func (s *SQLiteStore) load() error {
	if s.max <= 0 {
		return nil
	}
	rows, err := s.db.Query(`
		SELECT line FROM (
			SELECT rowid, line FROM history ORDER BY rowid DESC LIMIT ?
		) ORDER BY rowid ASC`, s.max)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return fmt.Errorf("scanning history row: %w", err)
		}
		s.ring.Add(line)
	}
	return rows.Err()
}

// Add appends a line to the in-memory ring and writes it through to the
// database. Write failures do not interrupt the editing session; the
// first one is kept and reported by Close.
func (s *SQLiteStore) Add(line string) {
	s.ring.Add(line)
	if s.max <= 0 {
		return
	}

	_, err := s.db.Exec(`INSERT INTO history (id, line) VALUES (?, ?)`,
		uuid.New().String(), line)
	if err == nil {
		_, err = s.db.Exec(`
			DELETE FROM history WHERE rowid NOT IN (
				SELECT rowid FROM history ORDER BY rowid DESC LIMIT ?
			)`, s.max)
	}
	if err != nil && s.writeErr == nil {
		s.writeErr = fmt.Errorf("persisting history line: %w", err)
	}
}

// Prev moves toward older entries, clamped at the oldest.
func (s *SQLiteStore) Prev() string {
	return s.ring.Prev()
}

// Next moves toward newer entries, yielding "" past the newest.
func (s *SQLiteStore) Next() string {
	return s.ring.Next()
}

// Close releases the database and surfaces any deferred write error.
func (s *SQLiteStore) Close() error {
	closeErr := s.db.Close()
	if s.writeErr != nil {
		return s.writeErr
	}
	return closeErr
}
