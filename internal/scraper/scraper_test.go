package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func listingFragment(i int, withTitleAndLink bool) string {
	if !withTitleAndLink {
		return `<li class="EIR5N"><span class="_2b6f3">₹ 100</span></li>`
	}
	return fmt.Sprintf(`<li class="EIR5N">
		<a href="/item/cover-%d"><h6>Car Cover %d</h6></a>
		<span class="_2b6f3">₹ %d</span>
		<span class="_2e28f">City %d</span>
	</li>`, i, i, 100*i, i)
}

func TestScrapePageCountsFoundAndValid(t *testing.T) {
	s := NewScraper(DefaultSelectors(), testBaseURL)

	// 20 fragments: 18 recoverable, 2 missing both title and link
	var b strings.Builder
	b.WriteString("<html><body><ul>")
	for i := 1; i <= 18; i++ {
		b.WriteString(listingFragment(i, true))
	}
	b.WriteString(listingFragment(0, false))
	b.WriteString(listingFragment(0, false))
	b.WriteString("</ul></body></html>")

	records, stats, err := s.ScrapePage(1, strings.NewReader(b.String()))
	assert.NoError(t, err)
	assert.Equal(t, 20, stats.Found)
	assert.Equal(t, 18, stats.Valid)
	assert.Equal(t, 2, stats.Rejected)
	assert.Len(t, records, 18)

	// Records keep document order
	assert.Equal(t, "Car Cover 1", records[0].Title)
	assert.Equal(t, "https://www.olx.in/item/cover-1", records[0].URL)
	assert.Equal(t, "Car Cover 18", records[17].Title)
}

func TestScrapePageNoContainers(t *testing.T) {
	s := NewScraper(DefaultSelectors(), testBaseURL)

	records, stats, err := s.ScrapePage(2, strings.NewReader("<html><body><p>maintenance</p></body></html>"))
	assert.NoError(t, err)
	assert.Nil(t, records)
	assert.Equal(t, 0, stats.Found)
	assert.Equal(t, 0, stats.Valid)
}

func TestScrapePageInvariant(t *testing.T) {
	s := NewScraper(DefaultSelectors(), testBaseURL)

	html := `<html><body><ul>
		<li class="EIR5N"><a href="/item/1"><h6>Has everything</h6></a></li>
		<li class="EIR5N"><h6>No link at all</h6></li>
		<li class="EIR5N"><a href="/item/3"></a></li>
	</ul></body></html>`

	records, stats, err := s.ScrapePage(1, strings.NewReader(html))
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Found)
	assert.Equal(t, 1, stats.Valid)
	assert.Equal(t, 2, stats.Rejected)

	// Every surviving record has a non-empty title and absolute URL
	for _, record := range records {
		assert.NotEmpty(t, record.Title)
		assert.NoError(t, ValidateRecord(record))
	}
}
