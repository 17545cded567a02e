package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded render invocation.
type Run struct {
	ID             string
	Scene          string
	SourcePath     string
	FPS            int
	FrameCount     int
	ElapsedSeconds float64
	SheetPath      string
	CreatedAt      time.Time
}

// Store persists render runs in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS render_runs (
    id              TEXT PRIMARY KEY,
    scene           TEXT NOT NULL,
    source_path     TEXT NOT NULL,
    fps             INTEGER NOT NULL,
    frame_count     INTEGER NOT NULL,
    elapsed_seconds REAL NOT NULL,
    sheet_path      TEXT,
    created_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_render_runs_created_at ON render_runs (created_at DESC);
`

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history database path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location backing the store.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Record inserts a run, assigning an ID and timestamp when absent.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run == nil {
		return fmt.Errorf("run is required")
	}
	if strings.TrimSpace(run.ID) == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO render_runs (
            id, scene, source_path, fps, frame_count, elapsed_seconds, sheet_path, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Scene,
		run.SourcePath,
		run.FPS,
		run.FrameCount,
		run.ElapsedSeconds,
		nullableString(run.SheetPath),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert render run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A limit <= 0 returns all.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, scene, source_path, fps, frame_count, elapsed_seconds, sheet_path, created_at
        FROM render_runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query render runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var sheetPath sql.NullString
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Scene, &run.SourcePath, &run.FPS, &run.FrameCount, &run.ElapsedSeconds, &sheetPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scan render run: %w", err)
		}
		run.SheetPath = sheetPath.String
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			run.CreatedAt = parsed
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate render runs: %w", err)
	}
	return runs, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
