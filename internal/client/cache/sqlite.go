package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteStore persists cache entries in the cache_entries table of the
// local state database. Timestamps are stored as unix nanoseconds.
type SQLiteStore struct {
	db *sql.DB
	// now is a test seam for freshness timestamps.
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Get(ctx context.Context, key Key) (*Entry, error) {
	var (
		payload   []byte
		stale     int
		fetchedAt int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT payload, stale, fetched_at FROM cache_entries
		WHERE kind = ? AND res_id = ? AND filter = ?
	`, key.Kind, key.ID, key.Filter).Scan(&payload, &stale, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry %v: %w", key, err)
	}
	return &Entry{
		Key:       key,
		Payload:   payload,
		Stale:     stale != 0,
		FetchedAt: time.Unix(0, fetchedAt),
	}, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key Key, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (kind, res_id, filter, payload, stale, fetched_at)
		VALUES (?, ?, ?, ?, 0, ?)
		ON CONFLICT(kind, res_id, filter) DO UPDATE SET
			payload = excluded.payload,
			stale = 0,
			fetched_at = excluded.fetched_at
	`, key.Kind, key.ID, key.Filter, payload, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to put cache entry %v: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) MarkStale(ctx context.Context, kind string, id int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE cache_entries SET stale = 1 WHERE kind = ? AND res_id = ?
	`, kind, id)
	if err != nil {
		return fmt.Errorf("failed to mark %s[%d] stale: %w", kind, id, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries`)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
