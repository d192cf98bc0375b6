package scraper

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Cyril-36/olx-scraper/helpers"
	"github.com/Cyril-36/olx-scraper/logger"
	apperrors "github.com/Cyril-36/olx-scraper/pkg/errors"
	"github.com/Cyril-36/olx-scraper/services/cache"
)

// Fetcher issues one outbound request per page index. When the site answers
// with a rate-limit status, a block key is set in the cache so the remaining
// pages of the run (and, with memcache, other runs) short-circuit instead of
// hammering the site.
type Fetcher struct {
	BaseURL   string
	Timeout   time.Duration
	CacheKey  string
	CacheSvc  cache.CacheService
	BlockTime time.Duration

	log *logger.Logger
}

// NewFetcher creates a fetcher for the given base search URL
func NewFetcher(baseURL string, timeout time.Duration, cacheSvc cache.CacheService) *Fetcher {
	return &Fetcher{
		BaseURL:   baseURL,
		Timeout:   timeout,
		CacheKey:  "olx_rate_limited",
		CacheSvc:  cacheSvc,
		BlockTime: 5 * time.Minute,
		log:       logger.ForFetcher(),
	}
}

// PageURL builds the target URL for a page index. The first page is the base
// search URL itself; later pages carry a page query parameter.
func (f *Fetcher) PageURL(page int) string {
	if page <= 1 {
		return f.BaseURL
	}
	return fmt.Sprintf("%s?page=%d", f.BaseURL, page)
}

// Fetch retrieves the markup for one page index
func (f *Fetcher) Fetch(page int) (io.Reader, error) {
	url := f.PageURL(page)

	// Check if the site has rate limited us recently
	if f.CacheSvc != nil && f.CacheKey != "" {
		if _, err := f.CacheSvc.Get(f.CacheKey); err == nil {
			f.log.Warn().Int("page", page).Msg("Skipping fetch, rate-limit block is active")
			return nil, apperrors.NewRateLimit(url, fmt.Sprintf("%d seconds", int(f.BlockTime.Seconds())))
		}
	}

	f.log.Debug().Int("page", page).Str("url", url).Msg("Fetching page")

	body, err := helpers.FetchWithBrowserHeaders(url, f.Timeout)
	if err != nil {
		var serr *apperrors.ScrapeError
		if errors.As(err, &serr) && serr.Type == apperrors.ErrorTypeRateLimit && f.CacheSvc != nil && f.CacheKey != "" {
			f.CacheSvc.Set(f.CacheKey, []byte("blocked"), f.BlockTime)
		}
		return nil, err
	}

	return body, nil
}
