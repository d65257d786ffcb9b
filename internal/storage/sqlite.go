// Package storage provides SQLite-based persistence for captured frames.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/pkoval/vgacons/internal/vga"
)

// Store manages the SQLite database connection for snapshot persistence.
type Store struct {
	db *sql.DB
}

// SnapshotEntry represents a single stored frame capture.
type SnapshotEntry struct {
	ID        int64
	Label     string
	Data      []byte // device-layout frame blob, vga.FrameSize bytes
	CreatedAt time.Time
}

// Frame decodes the stored blob back into a frame.
func (e *SnapshotEntry) Frame() (*vga.Frame, error) {
	var f vga.Frame
	if err := f.UnmarshalBinary(e.Data); err != nil {
		return nil, fmt.Errorf("storage: cannot decode snapshot %d: %w", e.ID, err)
	}
	return &f, nil
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

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL,
			frame BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at DESC);
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

// SaveSnapshot stores a captured frame under the given label.
// Returns the ID of the inserted record.
func (s *Store) SaveSnapshot(label string, frame *vga.Frame) (int64, error) {
	data, err := frame.MarshalBinary()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode frame: %w", err)
	}

	result, err := s.db.Exec(
		"INSERT INTO snapshots (label, frame) VALUES (?, ?)",
		label, data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Snapshot retrieves a stored frame by its record ID.
// Returns nil if no snapshot with that ID exists.
func (s *Store) Snapshot(id int64) (*SnapshotEntry, error) {
	var e SnapshotEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, label, frame, created_at
		 FROM snapshots
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Label, &e.Data, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	// Parse the datetime
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}

	return &e, nil
}

// LatestSnapshot retrieves the most recently saved frame.
// Returns nil if the store is empty. Ordered by row ID so that
// snapshots saved within the same second still resolve correctly.
func (s *Store) LatestSnapshot() (*SnapshotEntry, error) {
	var e SnapshotEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, label, frame, created_at
		 FROM snapshots
		 ORDER BY id DESC
		 LIMIT 1`,
	).Scan(&e.ID, &e.Label, &e.Data, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query latest snapshot: %w", err)
	}

	// Parse the datetime
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}

	return &e, nil
}

// ListSnapshots retrieves the most recent snapshots, newest first.
func (s *Store) ListSnapshots(limit int) ([]SnapshotEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, label, frame, created_at
		 FROM snapshots
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var entries []SnapshotEntry
	for rows.Next() {
		var e SnapshotEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Label, &e.Data, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteSnapshot removes a stored frame by its record ID.
func (s *Store) DeleteSnapshot(id int64) error {
	result, err := s.db.Exec("DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshot: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: snapshot %d not found", id)
	}

	return nil
}

// ClearSnapshots deletes all stored frames.
func (s *Store) ClearSnapshots() error {
	_, err := s.db.Exec("DELETE FROM snapshots")
	if err != nil {
		return fmt.Errorf("storage: cannot clear snapshots: %w", err)
	}
	return nil
}
