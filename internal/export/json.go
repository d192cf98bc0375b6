package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Cyril-36/olx-scraper/internal/scraper"
	apperrors "github.com/Cyril-36/olx-scraper/pkg/errors"
)

// WriteJSON writes the records as a single JSON array of objects, indented,
// UTF-8, with non-ASCII characters preserved literally to match the CSV's
// readability.
func WriteJSON(path string, records []scraper.ListingRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewExport(path, "failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewExport(path, "failed to create file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return apperrors.NewExport(path, "failed to encode records", err)
	}
	return nil
}
