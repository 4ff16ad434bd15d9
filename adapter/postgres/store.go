// Package postgres is the durable implementation of the cache-store port.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"scrapefeed/domain"
)

type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Ensure(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS pages (
    url TEXT PRIMARY KEY,
    raw_body BYTEA NOT NULL,
    resolved_body TEXT NOT NULL,
    decoded_body TEXT NOT NULL,
    cached_at TIMESTAMPTZ NOT NULL
);
`)
	if err != nil {
		return &domain.StorageError{Op: "ensure", Err: err}
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (domain.CacheEntry, bool, error) {
	var e domain.CacheEntry
	row := s.db.QueryRowContext(ctx,
		`SELECT raw_body, resolved_body, decoded_body, cached_at FROM pages WHERE url = $1`, key)
	if err := row.Scan(&e.RawBody, &e.ResolvedBody, &e.DecodedBody, &e.CachedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CacheEntry{}, false, nil
		}
		return domain.CacheEntry{}, false, &domain.StorageError{Op: "get", Err: err}
	}
	return e, true, nil
}

func (s *Store) Set(ctx context.Context, key string, entry domain.CacheEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pages (url, raw_body, resolved_body, decoded_body, cached_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (url) DO UPDATE SET
		   raw_body = EXCLUDED.raw_body,
		   resolved_body = EXCLUDED.resolved_body,
		   decoded_body = EXCLUDED.decoded_body,
		   cached_at = GREATEST(pages.cached_at, EXCLUDED.cached_at)`,
		key, entry.RawBody, entry.ResolvedBody, entry.DecodedBody, entry.CachedAt)
	if err != nil {
		return &domain.StorageError{Op: "set", Err: err}
	}
	return nil
}
