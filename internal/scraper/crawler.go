package scraper

import (
	"context"
	"time"

	"github.com/Cyril-36/olx-scraper/logger"
	apperrors "github.com/Cyril-36/olx-scraper/pkg/errors"
)

// Crawler drives the sequential page loop: fetch, scrape, accumulate, delay.
// Per-page failures cost that page's yield and nothing else; the loop only
// refuses to start on invalid configuration.
type Crawler struct {
	fetcher *Fetcher
	scraper *Scraper
	pages   int
	delay   time.Duration
	log     *logger.Logger

	sleep func(time.Duration) // replaced in tests
}

// NewCrawler creates a crawler over pages 1..pages with the given inter-page delay
func NewCrawler(fetcher *Fetcher, scraper *Scraper, pages int, delay time.Duration) *Crawler {
	return &Crawler{
		fetcher: fetcher,
		scraper: scraper,
		pages:   pages,
		delay:   delay,
		log:     logger.ForScraper(),
		sleep:   time.Sleep,
	}
}

// Crawl fetches and scrapes every page in order and returns the accumulated
// records plus the run's counters. The delay is applied after every page
// except the last, whether or not the page yielded anything.
func (c *Crawler) Crawl(ctx context.Context) ([]ListingRecord, CrawlStats, error) {
	stats := CrawlStats{Pages: c.pages}

	if c.pages < 1 {
		return nil, stats, apperrors.NewConfiguration("page count must be at least 1", nil)
	}
	if c.delay < 0 {
		return nil, stats, apperrors.NewConfiguration("delay must not be negative", nil)
	}

	var records []ListingRecord
	for page := 1; page <= c.pages; page++ {
		if err := ctx.Err(); err != nil {
			return records, stats, err
		}

		c.log.Info().
			Int("page", page).
			Str("url", c.fetcher.PageURL(page)).
			Msg("Scraping page")

		body, err := c.fetcher.Fetch(page)
		if err != nil {
			stats.PagesFailed++
			c.log.Error().
				Int("page", page).
				Err(err).
				Msg("Failed to fetch page")
		} else {
			pageRecords, pageStats, err := c.scraper.ScrapePage(page, body)
			if err != nil {
				stats.PagesFailed++
				c.log.Error().
					Int("page", page).
					Err(err).
					Msg("Failed to scrape page")
			} else {
				records = append(records, pageRecords...)
				stats.TotalFound += pageStats.Found
				stats.TotalValid += pageStats.Valid
				stats.TotalRejected += pageStats.Rejected
				c.log.Info().
					Int("page", page).
					Int("found", pageStats.Found).
					Int("valid", pageStats.Valid).
					Msg("Scraped page")
			}
		}

		// Pace requests toward the site; nothing follows the final page
		if page < c.pages {
			c.sleep(c.delay)
		}
	}

	c.log.Info().
		Int("total_items", len(records)).
		Int("pages_failed", stats.PagesFailed).
		Msg("Crawl finished")

	return records, stats, nil
}
