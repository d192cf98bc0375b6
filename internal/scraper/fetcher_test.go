package scraper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/Cyril-36/olx-scraper/pkg/errors"
	"github.com/Cyril-36/olx-scraper/services/cache"

	"github.com/stretchr/testify/assert"
)

func TestFetcherPageURL(t *testing.T) {
	f := NewFetcher("https://www.olx.in/items/q-car-cover", 15*time.Second, nil)

	assert.Equal(t, "https://www.olx.in/items/q-car-cover", f.PageURL(1))
	assert.Equal(t, "https://www.olx.in/items/q-car-cover?page=2", f.PageURL(2))
	assert.Equal(t, "https://www.olx.in/items/q-car-cover?page=7", f.PageURL(7))
}

func TestFetcherFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "":
			w.Write([]byte("<html><body>page one</body></html>"))
		case "2":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	f := NewFetcher(server.URL, 5*time.Second, cache.NewMemoryCache())

	body, err := f.Fetch(1)
	assert.NoError(t, err)
	assert.NotNil(t, body)

	_, err = f.Fetch(2)
	assert.Error(t, err)

	var serr *apperrors.ScrapeError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, apperrors.ErrorTypeHTTP, serr.Type)
}

func TestFetcherRateLimitBlock(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	f := NewFetcher(server.URL, 5*time.Second, cache.NewMemoryCache())

	// First fetch hits the server and trips the block
	_, err := f.Fetch(1)
	assert.Error(t, err)
	assert.Equal(t, 1, requests)

	var serr *apperrors.ScrapeError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, apperrors.ErrorTypeRateLimit, serr.Type)

	// Subsequent fetches short-circuit on the block cache
	_, err = f.Fetch(2)
	assert.Error(t, err)
	assert.Equal(t, 1, requests)

	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, apperrors.ErrorTypeRateLimit, serr.Type)
}
