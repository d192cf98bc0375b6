package scraper

import "github.com/PuerkitoBio/goquery"

// ListingRecord is one scraped classified ad. Title and URL are guaranteed
// non-empty for every record that survives validation; price and location
// fall back to a placeholder and image_url to the empty string.
type ListingRecord struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Location string `json:"location"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

// Placeholder values for display fields that could not be extracted
const (
	PlaceholderPrice    = "N/A"
	PlaceholderLocation = "N/A"
)

// FieldRule extracts one candidate value from a listing fragment.
// Rules are tried in order; the first non-empty result wins.
type FieldRule func(*goquery.Selection) string

// Selectors holds the ordered fallback chains for locating listing
// containers and extracting each field. The site's markup is not
// contractually stable, so every lookup has alternatives.
type Selectors struct {
	// ListingQueries are tried in order against the full page; the first
	// query returning one or more matches is accepted as-is.
	ListingQueries []string

	Title    []FieldRule
	Price    []FieldRule
	Location []FieldRule
	URL      []FieldRule
	ImageURL []FieldRule
}

// PageStats summarizes one page's extraction outcome
type PageStats struct {
	Page     int
	Found    int
	Valid    int
	Rejected int
}

// CrawlStats summarizes a whole crawl
type CrawlStats struct {
	Pages         int
	PagesFailed   int
	TotalFound    int
	TotalValid    int
	TotalRejected int
}
