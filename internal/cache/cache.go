// Package cache is the freshness-aware content cache in front of the fetch
// port. Entries are keyed by canonical URL, revalidated with conditional
// requests once stale, and never deleted on expiry.
package cache

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"scrapefeed/domain"
	"scrapefeed/internal/resolve"
	"scrapefeed/internal/urlx"
)

// DefaultTTL is the freshness window after which an entry must be
// revalidated before being trusted.
const DefaultTTL = 10 * time.Minute

type Cache struct {
	store   domain.CacheStore
	fetcher domain.Fetcher
	ttl     time.Duration
	log     *zap.Logger
	now     func() time.Time
}

func New(store domain.CacheStore, fetcher domain.Fetcher, ttl time.Duration, log *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{store: store, fetcher: fetcher, ttl: ttl, log: log, now: time.Now}
}

// Get returns the cached entry for rawURL, fetching or revalidating as
// needed. A fresh hit makes no network call. A stale hit is revalidated with
// If-Modified-Since: 304 keeps the bodies and bumps CachedAt, a 2xx replaces
// the entry, anything else serves the stale copy. Fetch failures never
// propagate; store failures always do.
func (c *Cache) Get(ctx context.Context, rawURL string) (domain.CacheEntry, error) {
	u, err := urlx.Parse(rawURL)
	if err != nil {
		return domain.CacheEntry{}, err
	}
	key := urlx.Canonical(u)

	entry, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return domain.CacheEntry{}, err
	}

	now := c.now()
	if ok && entry.Age(now) < c.ttl {
		return entry, nil
	}

	var since time.Time
	if ok {
		since = entry.CachedAt
	}
	res, err := c.fetcher.Fetch(ctx, rawURL, since)
	switch {
	case err != nil:
		c.log.Warn("fetch failed",
			zap.String("url", rawURL), zap.Bool("cached", ok), zap.Error(err))
		return entry, nil
	case res.NotModified && !ok:
		// nothing to revalidate; a 304 here is a server misbehaving
		c.log.Warn("not-modified answer without a cached entry",
			zap.String("url", rawURL))
		return domain.CacheEntry{}, nil
	case res.NotModified:
		entry.CachedAt = now
		if err := c.store.Set(ctx, key, entry); err != nil {
			return domain.CacheEntry{}, err
		}
		return entry, nil
	default:
		fresh := buildEntry(u, res, now)
		if err := c.store.Set(ctx, key, fresh); err != nil {
			return domain.CacheEntry{}, err
		}
		return fresh, nil
	}
}

func buildEntry(u *url.URL, res domain.FetchResult, now time.Time) domain.CacheEntry {
	decoded := decode(res.Body, res.ContentType)
	return domain.CacheEntry{
		RawBody:      res.Body,
		DecodedBody:  decoded,
		ResolvedBody: resolve.Links(decoded, u),
		CachedAt:     now,
	}
}
