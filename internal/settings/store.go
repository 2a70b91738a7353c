// Package settings remembers calculator preferences between runs in a
// small SQLite database.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/DipperMason/desk-calculator/internal/calculator"
)

const keyAngleUnit = "angle_unit"

// Store is a key/value preference table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the preference database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS preferences (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored value for key; ok is false if none is stored.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

// AngleUnit returns the remembered angle unit, or fallback when none is
// stored or the stored value is unreadable.
func (s *Store) AngleUnit(ctx context.Context, fallback calculator.AngleUnit) (calculator.AngleUnit, error) {
	value, ok, err := s.Get(ctx, keyAngleUnit)
	if err != nil || !ok {
		return fallback, err
	}
	unit, err := calculator.ParseAngleUnit(value)
	if err != nil {
		return fallback, nil
	}
	return unit, nil
}

func (s *Store) SaveAngleUnit(ctx context.Context, unit calculator.AngleUnit) error {
	return s.Set(ctx, keyAngleUnit, unit.String())
}
