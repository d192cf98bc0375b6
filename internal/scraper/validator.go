package scraper

import (
	"net/url"
	"strings"

	apperrors "github.com/Cyril-36/olx-scraper/pkg/errors"
)

// ValidateRecord decides whether a raw extracted record qualifies for the
// result set. Title must be non-empty after trimming and the URL must be a
// well-formed absolute http(s) link; everything else passes through with
// whatever the extractor produced, placeholders included.
func ValidateRecord(record ListingRecord) error {
	if strings.TrimSpace(record.Title) == "" {
		return apperrors.NewValidation(record.URL, "title is empty")
	}

	if record.URL == "" {
		return apperrors.NewValidation(record.Title, "url is empty")
	}

	u, err := url.Parse(record.URL)
	if err != nil {
		return apperrors.NewValidation(record.Title, "url is not parseable")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.NewValidation(record.Title, "url is not an absolute http(s) link")
	}

	return nil
}
