// Package memory is a process-local implementation of the cache-store port,
// used when no durable backend is configured and in tests.
package memory

import (
	"context"
	"sync"

	"scrapefeed/domain"
)

type Store struct {
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
}

func New() *Store {
	return &Store{entries: make(map[string]domain.CacheEntry)}
}

func (s *Store) Ensure(ctx context.Context) error { return nil }

func (s *Store) Get(ctx context.Context, key string) (domain.CacheEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok, nil
}

func (s *Store) Set(ctx context.Context, key string, entry domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
	return nil
}
