// Package httpfetch is the HTTP implementation of the fetch port.
package httpfetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"scrapefeed/domain"
)

const defaultTimeout = 20 * time.Second

type Fetcher struct {
	client    *http.Client
	userAgent string
}

func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: "scrapefeed/1.0",
	}
}

// Fetch performs one GET. A non-zero ifModifiedSince is sent as an
// If-Modified-Since header; a 304 answer comes back with NotModified set and
// no body. Any other non-2xx outcome is a *domain.NetworkError.
func (f *Fetcher) Fetch(ctx context.Context, url string, ifModifiedSince time.Time) (domain.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.FetchResult{}, &domain.NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	if !ifModifiedSince.IsZero() {
		req.Header.Set("If-Modified-Since", ifModifiedSince.UTC().Format(http.TimeFormat))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.FetchResult{}, &domain.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return domain.FetchResult{StatusCode: resp.StatusCode, NotModified: true}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.FetchResult{}, &domain.NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FetchResult{}, &domain.NetworkError{URL: url, Err: err}
	}
	return domain.FetchResult{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
