package domain

import "time"

// Source is the immutable per-request configuration for one scraped page.
// Selectors are raw XPath (starting with "/" or "id(") or CSS expressions;
// empty field selectors fall back to built-in defaults.
type Source struct {
	URL           string
	SearchWord    string
	ListSelector  string
	TitleSelector string
	LinkSelector  string
	ImageSelector string
}

// CacheEntry is one cached page, stored under the canonical form of its URL.
// RawBody holds the bytes as fetched, DecodedBody the UTF-8 decoded markup,
// ResolvedBody the decoded markup with relative links rewritten to absolute.
type CacheEntry struct {
	RawBody      []byte
	ResolvedBody string
	DecodedBody  string
	CachedAt     time.Time
}

// Age reports how long ago the entry was stored or last revalidated.
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CachedAt)
}

// Item is one extracted feed item. Values are plain owned strings, never
// references into a parsed tree.
type Item struct {
	Title string
	Link  string
	Image string
}
