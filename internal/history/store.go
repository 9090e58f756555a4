// Package history keeps a local log of files this tool has trashed or
// deleted, so the user can audit past runs. The log is advisory: failures
// here are warned about, never allowed to block a deletion.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"gdrive-eraser/internal/drive"

	_ "github.com/mattn/go-sqlite3"
)

// Deletion actions.
const (
	ActionTrash  = "trash"
	ActionDelete = "delete"
)

// Entry is one logged deletion.
type Entry struct {
	FileID     string
	Name       string
	SizeBytes  int64
	FolderPath string
	MimeType   string
	Action     string
	DeletedAt  time.Time
}

// Stats aggregates the whole log.
type Stats struct {
	TotalEntries int
	TotalBytes   int64
}

// Store is a SQLite-backed deletion log.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	store := &Store{db: db}

	if err := store.createSchema(); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return store, nil
}

func (s *Store) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS deletions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			file_id     TEXT NOT NULL,
			name        TEXT NOT NULL DEFAULT '',
			size_bytes  INTEGER NOT NULL DEFAULT 0,
			folder_path TEXT NOT NULL DEFAULT '',
			mime_type   TEXT NOT NULL DEFAULT '',
			action      TEXT NOT NULL,
			deleted_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_deletions_deleted_at ON deletions(deleted_at);
	`

	_, err := s.db.Exec(schema)

	return err
}

// Add logs one deletion.
func (s *Store) Add(e Entry) error {
	deletedAt := e.DeletedAt
	if deletedAt.IsZero() {
		deletedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO deletions (file_id, name, size_bytes, folder_path, mime_type, action, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.FileID, e.Name, e.SizeBytes, e.FolderPath, e.MimeType, e.Action, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to record deletion of %s: %w", e.FileID, err)
	}

	return nil
}

// Record implements eraser.Recorder on top of Add.
func (s *Store) Record(rec *drive.FileRecord, permanent bool) error {
	action := ActionTrash
	if permanent {
		action = ActionDelete
	}

	return s.Add(Entry{
		FileID:     rec.ID,
		Name:       rec.Name,
		SizeBytes:  rec.Size,
		FolderPath: rec.FolderPath,
		MimeType:   rec.MimeType,
		Action:     action,
	})
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT file_id, name, size_bytes, folder_path, mime_type, action, deleted_at
		FROM deletions
		ORDER BY deleted_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query deletion history: %w", err)
	}
	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.FileID, &e.Name, &e.SizeBytes, &e.FolderPath, &e.MimeType, &e.Action, &e.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deletion entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Stats returns log-wide totals.
func (s *Store) Stats() (Stats, error) {
	var stats Stats

	err := s.db.QueryRow("SELECT COUNT(*), COALESCE(SUM(size_bytes), 0) FROM deletions").
		Scan(&stats.TotalEntries, &stats.TotalBytes)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to query history stats: %w", err)
	}

	return stats, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
