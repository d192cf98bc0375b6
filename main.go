package main

import (
	"context"
	"encoding/json"
	"flag"
	"path/filepath"
	"time"

	"github.com/Cyril-36/olx-scraper/config"
	"github.com/Cyril-36/olx-scraper/internal/export"
	"github.com/Cyril-36/olx-scraper/internal/scraper"
	"github.com/Cyril-36/olx-scraper/logger"
	"github.com/Cyril-36/olx-scraper/services/cache"
	"github.com/Cyril-36/olx-scraper/services/publisher"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load configuration from environment, then let flags override it
	cfg := config.LoadConfig()
	flag.IntVar(&cfg.Pages, "pages", cfg.Pages, "Number of pages to scrape")
	delaySeconds := flag.Float64("delay", cfg.Delay.Seconds(), "Delay between page requests in seconds")
	flag.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "Base search URL")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory")
	flag.StringVar(&cfg.CSVFile, "csv", cfg.CSVFile, "CSV output filename")
	flag.StringVar(&cfg.JSONFile, "json", cfg.JSONFile, "JSON output filename")
	flag.Parse()
	cfg.Delay = secondsToDuration(*delaySeconds)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("url", cfg.BaseURL).
		Int("pages", cfg.Pages).
		Dur("delay", cfg.Delay).
		Msg("Starting scrape")

	ctx := context.Background()

	// Rate-limit block cache: memcache when configured, in-process otherwise
	var cacheSvc cache.CacheService
	if cfg.MemcacheAddr != "" {
		cacheSvc = cache.NewMemcacheService(cfg.MemcacheAddr)
		log.Info().Str("addr", cfg.MemcacheAddr).Msg("Using memcache block cache")
	} else {
		cacheSvc = cache.NewMemoryCache()
	}

	// Build the pipeline and run the crawl
	fetcher := scraper.NewFetcher(cfg.BaseURL, cfg.RequestTimeout, cacheSvc)
	pageScraper := scraper.NewScraper(scraper.DefaultSelectors(), cfg.BaseURL)
	crawler := scraper.NewCrawler(fetcher, pageScraper, cfg.Pages, cfg.Delay)

	records, stats, err := crawler.Crawl(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Crawl failed")
	}

	if len(records) == 0 {
		log.Warn().Msg("No data was scraped. Check the site structure or network connection.")
		return
	}

	// Export once, from the complete accumulated list
	csvPath := filepath.Join(cfg.OutputDir, cfg.CSVFile)
	jsonPath := filepath.Join(cfg.OutputDir, cfg.JSONFile)
	exportLog := logger.ForExporter()

	if err := export.WriteCSV(csvPath, records); err != nil {
		log.Fatal().Err(err).Msg("CSV export failed")
	}
	exportLog.Info().Int("records", len(records)).Str("path", csvPath).Msg("Saved CSV")

	if err := export.WriteJSON(jsonPath, records); err != nil {
		log.Fatal().Err(err).Msg("JSON export failed")
	}
	exportLog.Info().Int("records", len(records)).Str("path", jsonPath).Msg("Saved JSON")

	// Optionally feed the run into a Redis stream for downstream consumers
	if cfg.RedisAddr != "" {
		publishRecords(ctx, cfg, records)
	}

	printSummary(records, stats)
}

// publishRecords pushes every record to the configured Redis stream.
// Publishing failures are logged and do not fail the run; the files on disk
// are the primary output.
func publishRecords(ctx context.Context, cfg config.Config, records []scraper.ListingRecord) {
	log := logger.ForPublisher()

	pub := publisher.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
	defer pub.Close()

	published := 0
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			log.Error().Err(err).Msg("Failed to marshal record")
			continue
		}
		if err := pub.Publish(data); err != nil {
			log.Error().Err(err).Msg("Failed to publish record")
			continue
		}
		published++
	}

	log.Info().
		Int("published", published).
		Str("stream", cfg.RedisStream).
		Msg("Published records")
}

// printSummary logs the final totals and a few sample records
func printSummary(records []scraper.ListingRecord, stats scraper.CrawlStats) {
	log := logger.Default

	log.Info().
		Int("total_items", len(records)).
		Int("found", stats.TotalFound).
		Int("rejected", stats.TotalRejected).
		Int("pages_failed", stats.PagesFailed).
		Msg("Scraping summary")

	for i, record := range records {
		if i >= 3 {
			break
		}
		log.Info().
			Str("title", record.Title).
			Str("price", record.Price).
			Str("location", record.Location).
			Msg("Sample item")
	}
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
