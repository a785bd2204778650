package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"civiq/internal/modules/queue/domain"
	queueout "civiq/internal/modules/queue/port/out"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (queueout.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS queued_reports (
  id TEXT PRIMARY KEY,
  schema_version INTEGER NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  category TEXT NOT NULL,
  photo_name TEXT,
  photo BLOB,
  lat REAL NOT NULL,
  lng REAL NOT NULL,
  status TEXT NOT NULL,
  enqueued_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create queued_reports table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Enqueue(ctx context.Context, entry domain.Entry) error {
	const stmt = `
INSERT INTO queued_reports (id, schema_version, title, description, category, photo_name, photo, lat, lng, status, enqueued_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		domain.SchemaVersion,
		entry.Title,
		entry.Description,
		entry.Category,
		entry.PhotoName,
		entry.Photo,
		entry.Lat,
		entry.Lng,
		entry.Status,
		entry.EnqueuedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert queued report: %w", err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]domain.Entry, error) {
	// rowid is insertion order, which is enqueue order exactly; the
	// timestamp column only has millisecond resolution.
	const query = `
SELECT id, title, description, category, photo_name, photo, lat, lng, status, enqueued_at
FROM queued_reports
WHERE schema_version = ?
ORDER BY rowid ASC;
`
	rows, err := s.db.QueryContext(ctx, query, domain.SchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("list queued reports: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var entry domain.Entry
		var enqueuedAt string
		if err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Description,
			&entry.Category,
			&entry.PhotoName,
			&entry.Photo,
			&entry.Lat,
			&entry.Lng,
			&entry.Status,
			&enqueuedAt,
		); err != nil {
			return nil, fmt.Errorf("scan queued report: %w", err)
		}
		parsed, err := time.Parse(timeLayout, enqueuedAt)
		if err != nil {
			return nil, fmt.Errorf("decode enqueued_at: %w", err)
		}
		entry.EnqueuedAt = parsed
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list queued reports: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM queued_reports WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove queued report: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM queued_reports`); err != nil {
		return fmt.Errorf("clear queued reports: %w", err)
	}
	return nil
}
