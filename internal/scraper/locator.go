package scraper

import "github.com/PuerkitoBio/goquery"

// Locator finds the repeated container elements representing individual
// listings within a page. It tries an ordered list of structural queries
// and accepts the first one yielding any matches; results from different
// queries are never merged.
type Locator struct {
	queries []string
}

// NewLocator creates a locator over the given ordered queries
func NewLocator(queries []string) *Locator {
	return &Locator{queries: queries}
}

// Locate returns the listing containers found in the document and the query
// that matched them. A nil selection means no query matched anything; the
// caller treats that page as unparseable, not the crawl as failed.
func (l *Locator) Locate(doc *goquery.Document) (*goquery.Selection, string) {
	for _, query := range l.queries {
		sel := doc.Find(query)
		if sel.Length() > 0 {
			return sel, query
		}
	}
	return nil, ""
}
