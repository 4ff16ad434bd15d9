package domain

import "fmt"

// NetworkError is a failed fetch: transport fault or an HTTP status other
// than 2xx/304. It is always recovered inside the content cache.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// SelectorError is a malformed XPath or CSS selector. It is caught at the
// granularity of a single selector evaluation and degrades that field or
// list to empty.
type SelectorError struct {
	Expr string
	Err  error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("selector %q: %v", e.Expr, e.Err)
}

func (e *SelectorError) Unwrap() error { return e.Err }

// StorageError is a cache-store failure. It is the only error class that
// propagates out of the pipeline: with persistent state unavailable there is
// no fallback.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("cache store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
