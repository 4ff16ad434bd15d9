package httpfetch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapefeed/adapter/httpfetch"
	"scrapefeed/domain"
)

func TestFetchSuccess(t *testing.T) {
	var gotIMS, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIMS = r.Header.Get("If-Modified-Since")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<p>hello</p>"))
	}))
	defer srv.Close()

	res, err := httpfetch.New(time.Second).Fetch(context.Background(), srv.URL, time.Time{})
	require.NoError(t, err)

	assert.Empty(t, gotIMS, "a zero timestamp sends no conditional header")
	assert.Equal(t, "scrapefeed/1.0", gotUA)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.False(t, res.NotModified)
	assert.Equal(t, "<p>hello</p>", string(res.Body))
	assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
}

func TestFetchSendsIfModifiedSince(t *testing.T) {
	var gotIMS string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIMS = r.Header.Get("If-Modified-Since")
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	since := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	res, err := httpfetch.New(time.Second).Fetch(context.Background(), srv.URL, since)
	require.NoError(t, err)

	assert.Equal(t, since.Format(http.TimeFormat), gotIMS)
	assert.True(t, res.NotModified)
	assert.Empty(t, res.Body)
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := httpfetch.New(time.Second).Fetch(context.Background(), srv.URL, time.Time{})

	var netErr *domain.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
}

func TestFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := httpfetch.New(time.Second).Fetch(context.Background(), srv.URL, time.Time{})

	var netErr *domain.NetworkError
	assert.True(t, errors.As(err, &netErr))
}
