// Package prefs provides persistent storage for per-instance view
// preferences.
//
// Preferences are keyed by (service, instance_id) so each database,
// queue, or server remembers its own time range and period.
//
// Storage is backed by a SQLite database at
// ~/.config/cloudpulse/cloudpulse.db.
package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const (
	appDir = "cloudpulse"
	dbFile = "cloudpulse.db"
)

// pathOverride, when non-empty, replaces the default database path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the database path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Repository defines the persistence interface for view preferences.
type Repository interface {
	// Get returns preferences for a (service, instanceID) pair, or nil if not found.
	Get(service, instanceID string) (*ViewPrefs, error)

	// Save upserts preferences for an instance.
	Save(prefs *ViewPrefs) error

	// Close releases database resources.
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// DefaultPath returns the default database path.
func DefaultPath() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("prefs: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, dbFile), nil
}

// Open creates or opens the repository at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
// The parent directory is created if it does not exist.
func OpenAt(path string) (*SQLiteRepository, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prefs: failed to create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("prefs: failed to open database: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return r, nil
}

// migrate creates the view_prefs table if it doesn't exist.
func (r *SQLiteRepository) migrate() error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS view_prefs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			service        TEXT NOT NULL,
			instance_id    TEXT NOT NULL,
			time_range     TEXT NOT NULL DEFAULT '',
			period_seconds INTEGER NOT NULL DEFAULT 0,
			timezone       TEXT NOT NULL DEFAULT '',
			updated_at     TEXT NOT NULL DEFAULT (datetime('now')),
			UNIQUE(service, instance_id)
		);
	`
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("prefs: migration failed: %w", err)
	}
	return nil
}

// Get returns preferences for a (service, instanceID) pair, or nil if not found.
func (r *SQLiteRepository) Get(service, instanceID string) (*ViewPrefs, error) {
	row := r.db.QueryRow(`
		SELECT id, service, instance_id, time_range, period_seconds, timezone, updated_at
		FROM view_prefs
		WHERE service = ? AND instance_id = ?`,
		service, instanceID,
	)

	var prefs ViewPrefs
	var updatedStr string
	err := row.Scan(&prefs.ID, &prefs.Service, &prefs.InstanceID, &prefs.TimeRange, &prefs.PeriodSeconds, &prefs.Timezone, &updatedStr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("prefs: query failed: %w", err)
	}
	prefs.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return &prefs, nil
}

// Save upserts preferences for an instance.
func (r *SQLiteRepository) Save(prefs *ViewPrefs) error {
	prefs.UpdatedAt = time.Now().UTC()

	result, err := r.db.Exec(`
		INSERT INTO view_prefs (service, instance_id, time_range, period_seconds, timezone, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(service, instance_id) DO UPDATE SET
			time_range = excluded.time_range,
			period_seconds = excluded.period_seconds,
			timezone = excluded.timezone,
			updated_at = excluded.updated_at`,
		prefs.Service, prefs.InstanceID, prefs.TimeRange, prefs.PeriodSeconds, prefs.Timezone, prefs.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("prefs: upsert failed: %w", err)
	}

	if prefs.ID == 0 {
		id, err := result.LastInsertId()
		if err == nil {
			prefs.ID = id
		}
	}
	return nil
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
