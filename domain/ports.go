package domain

import (
	"context"
	"time"
)

// FetchResult is the outcome of one HTTP GET. Only two success shapes exist:
// a 2xx response with a body, or a 304 with NotModified set.
type FetchResult struct {
	StatusCode  int
	Body        []byte
	ContentType string
	NotModified bool
}

// Fetcher performs a single HTTP GET. A non-zero ifModifiedSince makes the
// request conditional. Non-2xx/non-304 outcomes are returned as *NetworkError.
type Fetcher interface {
	Fetch(ctx context.Context, url string, ifModifiedSince time.Time) (FetchResult, error)
}

// CacheStore is the persistence port for cached pages. Implementations must
// be safe for concurrent use; failures are returned as *StorageError.
type CacheStore interface {
	Ensure(ctx context.Context) error
	Get(ctx context.Context, key string) (CacheEntry, bool, error)
	Set(ctx context.Context, key string, entry CacheEntry) error
}
