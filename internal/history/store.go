// Package history keeps a small sqlite database of recently opened and saved
// score files, used to pre-fill the import prompt.
package history

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Entry is one remembered file.
type Entry struct {
	ID        string
	Path      string
	TouchedAt time.Time
}

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates, if needed) the history database at path and
// applies pending migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir history dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

// Touch records that path was opened or saved just now, creating the entry if
// it is new. Paths are stored in absolute form so the same file is one entry.
func (s *Store) Touch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	_, err = s.db.Exec(`
		INSERT INTO recent_files (id, path, touched_at) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET touched_at = excluded.touched_at`,
		uuid.NewString(), abs, now(),
	)
	return err
}

// Recent lists the most recently touched files, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, path, touched_at FROM recent_files
		ORDER BY touched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Path, &e.TouchedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MostRecent returns the single newest path, or "" when the history is empty.
func (s *Store) MostRecent() string {
	entries, err := s.Recent(1)
	if err != nil || len(entries) == 0 {
		return ""
	}
	return entries[0].Path
}

func (s *Store) Close() error { return s.db.Close() }

// now returns the current UTC time at full precision, so back-to-back
// touches still order correctly.
func now() time.Time {
	return time.Now().UTC()
}
