// Package storage provides SQLite-based persistence for saved frames and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Snapshot is a stored frame.
type Snapshot struct {
	ID        int64
	ShapeID   string
	ElapsedMS int64 // Animation clock when the frame was rendered
	Width     int
	Height    int
	Content   string // Full buffer including line terminators
	CreatedAt time.Time
}

// Run records one streaming or interactive session.
type Run struct {
	ID            int64
	ShapeID       string
	Mode          string // "stream", "play" or "ssh"
	Frames        int
	ExhaustedRays int64 // Rays that ran out of steps across the run
	DurationSecs  int
	CreatedAt     time.Time
}

// ShapeStats contains aggregated statistics for one shape.
type ShapeStats struct {
	ShapeID     string
	Runs        int
	TotalFrames int64
	Snapshots   int
	LastRun     time.Time
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
			shape_id TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_shape_id ON snapshots(shape_id);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			shape_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			exhausted_rays INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_shape_id ON runs(shape_id);
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

// SaveSnapshot stores a frame. Returns the ID of the inserted record.
func (s *Store) SaveSnapshot(snap Snapshot) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO snapshots (shape_id, elapsed_ms, width, height, content)
		 VALUES (?, ?, ?, ?, ?)`,
		snap.ShapeID, snap.ElapsedMS, snap.Width, snap.Height, snap.Content,
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

// Snapshots retrieves the most recent snapshots, newest first.
// An empty shapeID matches every shape.
func (s *Store) Snapshots(shapeID string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, shape_id, elapsed_ms, width, height, content, created_at
		 FROM snapshots
		 WHERE ? = '' OR shape_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		shapeID, shapeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var createdAt any
		if err := rows.Scan(&snap.ID, &snap.ShapeID, &snap.ElapsedMS, &snap.Width, &snap.Height, &snap.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		snap.CreatedAt = parseTime(createdAt)
		snaps = append(snaps, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return snaps, nil
}

// SnapshotByID retrieves a snapshot. Returns nil if it does not exist.
func (s *Store) SnapshotByID(id int64) (*Snapshot, error) {
	var snap Snapshot
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, shape_id, elapsed_ms, width, height, content, created_at
		 FROM snapshots WHERE id = ?`,
		id,
	).Scan(&snap.ID, &snap.ShapeID, &snap.ElapsedMS, &snap.Width, &snap.Height, &snap.Content, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	snap.CreatedAt = parseTime(createdAt)
	return &snap, nil
}

// DeleteSnapshot removes a snapshot by ID.
func (s *Store) DeleteSnapshot(id int64) error {
	_, err := s.db.Exec("DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshot: %w", err)
	}
	return nil
}

// SaveRun records a finished session. Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (shape_id, mode, frames, exhausted_rays, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		run.ShapeID, run.Mode, run.Frames, run.ExhaustedRays, run.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, shape_id, mode, frames, exhausted_rays, duration_secs, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt any
		if err := rows.Scan(&run.ID, &run.ShapeID, &run.Mode, &run.Frames, &run.ExhaustedRays, &run.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		run.CreatedAt = parseTime(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// GetShapeStats retrieves aggregated statistics for one shape.
func (s *Store) GetShapeStats(shapeID string) (*ShapeStats, error) {
	stats := &ShapeStats{ShapeID: shapeID}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), MAX(created_at)
		 FROM runs WHERE shape_id = ?`,
		shapeID,
	).Scan(&stats.Runs, &stats.TotalFrames, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	err = s.db.QueryRow(
		`SELECT COUNT(*) FROM snapshots WHERE shape_id = ?`,
		shapeID,
	).Scan(&stats.Snapshots)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count snapshots: %w", err)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
