// Package storage provides a SQLite-backed catalog of real artist and track
// names. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tunehunt/internal/content"
)

// Kind distinguishes artist names from track titles.
type Kind string

const (
	KindArtist Kind = "artist"
	KindTrack  Kind = "track"
)

// Store manages the SQLite database connection for the name catalog.
type Store struct {
	db *sql.DB
}

// Entry represents a single catalog row.
type Entry struct {
	ID        int64
	Kind      Kind
	Name      string
	CreatedAt time.Time
}

// Stats contains aggregated catalog figures.
type Stats struct {
	Artists      int
	Tracks       int
	LastImported time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS names (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL CHECK (kind IN ('artist', 'track')),
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (kind, name)
		);
		CREATE INDEX IF NOT EXISTS idx_names_kind ON names(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Import adds names to the catalog in one transaction, skipping blanks and
// names already present. Returns the number of rows inserted.
func (s *Store) Import(ctx context.Context, names content.Names) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO names (kind, name) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare import: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	add := func(kind Kind, list []string) error {
		for _, n := range list {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			res, err := stmt.ExecContext(ctx, string(kind), n)
			if err != nil {
				return fmt.Errorf("storage: cannot insert %s %q: %w", kind, n, err)
			}
			if affected, err := res.RowsAffected(); err == nil {
				inserted += int(affected)
			}
		}
		return nil
	}

	if err := add(KindArtist, names.Artists); err != nil {
		return 0, err
	}
	if err := add(KindTrack, names.Tracks); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return inserted, nil
}

// Entries lists catalog rows of one kind, oldest first.
// A non-positive limit returns every row.
func (s *Store) Entries(ctx context.Context, kind Kind, limit int) ([]Entry, error) {
	query := `SELECT id, kind, name, created_at FROM names WHERE kind = ? ORDER BY id`
	args := []any{string(kind)}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query names: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kindStr string
		var createdAt any
		if err := rows.Scan(&e.ID, &kindStr, &e.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Kind = Kind(kindStr)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Names returns every catalog name grouped into the content payload shape.
func (s *Store) Names(ctx context.Context) (content.Names, error) {
	var out content.Names

	artists, err := s.Entries(ctx, KindArtist, 0)
	if err != nil {
		return out, err
	}
	tracks, err := s.Entries(ctx, KindTrack, 0)
	if err != nil {
		return out, err
	}

	for _, e := range artists {
		out.Artists = append(out.Artists, e.Name)
	}
	for _, e := range tracks {
		out.Tracks = append(out.Tracks, e.Name)
	}
	return out, nil
}

// Remove deletes one name. Returns false if it was not present.
func (s *Store) Remove(ctx context.Context, kind Kind, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM names WHERE kind = ? AND name = ?", string(kind), name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot remove name: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count removed rows: %w", err)
	}
	return n > 0, nil
}

// Clear deletes every name in the catalog.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM names"); err != nil {
		return fmt.Errorf("storage: cannot clear catalog: %w", err)
	}
	return nil
}

// Stats returns per-kind counts and the newest import time.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var last any

	err := s.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN kind = 'artist' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'track' THEN 1 ELSE 0 END), 0),
			MAX(created_at)
		 FROM names`,
	).Scan(&st.Artists, &st.Tracks, &last)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get catalog stats: %w", err)
	}

	st.LastImported = parseTime(last)
	return st, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
