package config

import (
	"os"
	"strconv"
	"time"

	apperrors "github.com/Cyril-36/olx-scraper/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Target site
	BaseURL string

	// Crawl behavior
	Pages          int
	Delay          time.Duration
	RequestTimeout time.Duration

	// Output
	OutputDir string
	CSVFile   string
	JSONFile  string

	// Optional memcache-backed rate-limit block cache
	MemcacheAddr string

	// Optional Redis stream publishing
	RedisAddr   string
	RedisDB     int
	RedisStream string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	pages, _ := strconv.Atoi(getEnv("SCRAPE_PAGES", "3"))
	delay, _ := strconv.ParseFloat(getEnv("SCRAPE_DELAY_SECONDS", "1.5"), 64)
	timeout, _ := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "15"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return Config{
		BaseURL:        getEnv("OLX_SEARCH_URL", "https://www.olx.in/items/q-car-cover"),
		Pages:          pages,
		Delay:          time.Duration(delay * float64(time.Second)),
		RequestTimeout: time.Duration(timeout) * time.Second,
		OutputDir:      getEnv("OUTPUT_DIR", "output"),
		CSVFile:        getEnv("OUTPUT_CSV", "olx_car_covers.csv"),
		JSONFile:       getEnv("OUTPUT_JSON", "olx_car_covers.json"),
		MemcacheAddr:   getEnv("MEMCACHE_ADDR", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisDB:        redisDB,
		RedisStream:    getEnv("REDIS_STREAM", "listings"),
		Environment:    getEnv("OLX_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration before the crawl starts
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return apperrors.NewConfiguration("base URL must not be empty", nil)
	}
	if c.Pages < 1 {
		return apperrors.NewConfiguration("page count must be at least 1", nil)
	}
	if c.Delay < 0 {
		return apperrors.NewConfiguration("delay must not be negative", nil)
	}
	if c.RequestTimeout <= 0 {
		return apperrors.NewConfiguration("request timeout must be positive", nil)
	}
	if c.OutputDir == "" || c.CSVFile == "" || c.JSONFile == "" {
		return apperrors.NewConfiguration("output paths must not be empty", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
