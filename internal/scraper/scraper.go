package scraper

import (
	"fmt"
	"io"

	"github.com/Cyril-36/olx-scraper/logger"
	apperrors "github.com/Cyril-36/olx-scraper/pkg/errors"

	"github.com/PuerkitoBio/goquery"
)

// Scraper runs the extraction pipeline for one page: locate the listing
// containers, extract each field set, validate, and keep the survivors.
type Scraper struct {
	locator   *Locator
	extractor *Extractor
	log       *logger.Logger
}

// NewScraper wires the locator and extractor for the given selector set
func NewScraper(selectors Selectors, baseURL string) *Scraper {
	return &Scraper{
		locator:   NewLocator(selectors.ListingQueries),
		extractor: NewExtractor(selectors, baseURL),
		log:       logger.ForScraper(),
	}
}

// ScrapePage parses one page's markup and returns the validated records in
// document order along with the page's counts. A page where no structural
// query matches yields zero records and no error.
func (s *Scraper) ScrapePage(page int, body io.Reader) ([]ListingRecord, PageStats, error) {
	stats := PageStats{Page: page}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, stats, apperrors.NewParsing(fmt.Sprintf("page %d", page), "failed to parse HTML", err)
	}

	selections, query := s.locator.Locate(doc)
	if selections == nil {
		s.log.Warn().
			Int("page", page).
			Msg("No listing containers matched any known selector")
		return nil, stats, nil
	}

	stats.Found = selections.Length()
	s.log.Debug().
		Int("page", page).
		Int("found", stats.Found).
		Str("selector", query).
		Msg("Located listing containers")

	var records []ListingRecord
	selections.Each(func(i int, sel *goquery.Selection) {
		record := s.extractor.Extract(sel)
		if err := ValidateRecord(record); err != nil {
			stats.Rejected++
			s.log.Debug().
				Int("page", page).
				Err(err).
				Msg("Rejected listing")
			return
		}
		records = append(records, record)
	})

	stats.Valid = len(records)
	return records, stats, nil
}
