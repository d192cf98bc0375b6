package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor pulls the semantic fields of one listing out of its markup
// fragment. Each field has an ordered fallback chain of rules; the first
// rule producing a non-empty, non-whitespace string wins. Text is trimmed
// but otherwise left as-is (currency symbols, casing, scripts preserved).
type Extractor struct {
	selectors Selectors
	base      *url.URL
}

// NewExtractor creates an extractor resolving relative links against baseURL.
// An unparseable baseURL disables resolution; raw values pass through then.
func NewExtractor(selectors Selectors, baseURL string) *Extractor {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &Extractor{
		selectors: selectors,
		base:      base,
	}
}

// Extract applies every field's rule chain to the fragment and returns the
// raw record. Missing display fields get their placeholder; missing URL
// fields stay empty and are left to the validator to reject.
func (e *Extractor) Extract(s *goquery.Selection) ListingRecord {
	return ListingRecord{
		Title:    e.apply(s, e.selectors.Title, ""),
		Price:    e.apply(s, e.selectors.Price, PlaceholderPrice),
		Location: e.apply(s, e.selectors.Location, PlaceholderLocation),
		URL:      e.resolve(e.apply(s, e.selectors.URL, "")),
		ImageURL: e.resolve(e.apply(s, e.selectors.ImageURL, "")),
	}
}

// apply tries the rules in order and returns the first non-empty result,
// or the default when every rule misses
func (e *Extractor) apply(s *goquery.Selection, rules []FieldRule, defaultValue string) string {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if result := strings.TrimSpace(rule(s)); result != "" {
			return result
		}
	}
	return defaultValue
}

// resolve turns a relative link into an absolute one using the base URL.
// Unresolvable values are returned unmodified rather than dropped.
func (e *Extractor) resolve(href string) string {
	if href == "" || e.base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return href
	}
	return e.base.ResolveReference(ref).String()
}
