package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/Cyril-36/olx-scraper/internal/scraper"
	apperrors "github.com/Cyril-36/olx-scraper/pkg/errors"
)

// Columns is the field order shared by both exporters
var Columns = []string{"title", "price", "location", "url", "image_url"}

// row flattens a record in column order
func row(r scraper.ListingRecord) []string {
	return []string{r.Title, r.Price, r.Location, r.URL, r.ImageURL}
}

// WriteCSV writes the records to a UTF-8 CSV file with a header row, one
// data row per record in accumulation order. The parent directory is
// created if absent.
func WriteCSV(path string, records []scraper.ListingRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewExport(path, "failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewExport(path, "failed to create file", err)
	}
	defer file.Close()

	// csv.Writer handles quoting of delimiters and quote characters
	writer := csv.NewWriter(file)

	if err := writer.Write(Columns); err != nil {
		return apperrors.NewExport(path, "failed to write header", err)
	}
	for _, record := range records {
		if err := writer.Write(row(record)); err != nil {
			return apperrors.NewExport(path, "failed to write record", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewExport(path, "csv write error", err)
	}
	return nil
}
