package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cyril-36/olx-scraper/services/cache"

	"github.com/stretchr/testify/assert"
)

func fixturePage(page, items int) string {
	body := "<html><body><ul>"
	for i := 1; i <= items; i++ {
		body += fmt.Sprintf(`<li class="EIR5N">
			<a href="/item/p%d-i%d"><h6>Item %d-%d</h6></a>
			<span class="_2b6f3">₹ %d</span>
		</li>`, page, i, page, i, 100*i)
	}
	return body + "</ul></body></html>"
}

func fixtureServer(t *testing.T, itemsPerPage map[int]int, failPages map[int]bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &page)
		}
		if failPages[page] {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(fixturePage(page, itemsPerPage[page])))
	}))
}

func newTestCrawler(serverURL string, pages int, delay time.Duration) (*Crawler, *int) {
	fetcher := NewFetcher(serverURL, 5*time.Second, cache.NewMemoryCache())
	s := NewScraper(DefaultSelectors(), serverURL)
	c := NewCrawler(fetcher, s, pages, delay)

	sleeps := 0
	c.sleep = func(time.Duration) { sleeps++ }
	return c, &sleeps
}

func TestCrawlAccumulatesAcrossPages(t *testing.T) {
	server := fixtureServer(t, map[int]int{1: 2, 2: 3, 3: 1}, nil)
	defer server.Close()

	c, sleeps := newTestCrawler(server.URL, 3, time.Second)

	records, stats, err := c.Crawl(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 6)
	assert.Equal(t, 6, stats.TotalFound)
	assert.Equal(t, 6, stats.TotalValid)
	assert.Equal(t, 0, stats.PagesFailed)

	// Accumulation order follows page order
	assert.Equal(t, "Item 1-1", records[0].Title)
	assert.Equal(t, "Item 2-1", records[2].Title)
	assert.Equal(t, "Item 3-1", records[5].Title)

	// Delay applied between pages, not after the last
	assert.Equal(t, 2, *sleeps)
}

func TestCrawlContinuesPastFailedPage(t *testing.T) {
	server := fixtureServer(t, map[int]int{1: 2, 3: 1}, map[int]bool{2: true})
	defer server.Close()

	c, sleeps := newTestCrawler(server.URL, 3, time.Second)

	records, stats, err := c.Crawl(context.Background())
	assert.NoError(t, err)

	// Page 2 contributes nothing; pages 1 and 3 still count
	assert.Len(t, records, 3)
	assert.Equal(t, 1, stats.PagesFailed)
	assert.Equal(t, 3, stats.TotalValid)
	assert.Equal(t, "Item 1-1", records[0].Title)
	assert.Equal(t, "Item 3-1", records[2].Title)

	// The delay still applies after the failed fetch attempt
	assert.Equal(t, 2, *sleeps)
}

func TestCrawlSinglePageNeverSleeps(t *testing.T) {
	server := fixtureServer(t, map[int]int{1: 1}, nil)
	defer server.Close()

	c, sleeps := newTestCrawler(server.URL, 1, time.Second)

	records, _, err := c.Crawl(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 0, *sleeps)
}

func TestCrawlRejectsInvalidPageCount(t *testing.T) {
	server := fixtureServer(t, nil, nil)
	defer server.Close()

	for _, pages := range []int{0, -1} {
		c, _ := newTestCrawler(server.URL, pages, time.Second)
		_, _, err := c.Crawl(context.Background())
		assert.Error(t, err)
	}
}

func TestCrawlIsIdempotentOverFixedMarkup(t *testing.T) {
	server := fixtureServer(t, map[int]int{1: 3, 2: 2}, nil)
	defer server.Close()

	first, _ := newTestCrawler(server.URL, 2, 0)
	second, _ := newTestCrawler(server.URL, 2, 0)

	recordsA, _, err := first.Crawl(context.Background())
	assert.NoError(t, err)
	recordsB, _, err := second.Crawl(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, recordsA, recordsB)
}
