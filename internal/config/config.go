package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPageURL = "https://www.altenberg.de/de/p/-de-p-tages-news-zum-download-47003971-/tages-news-zum-download/47003971/"
	defaultBaseURL = "https://www.altenberg.de"
)

var validate = validator.New()

// AppConfig holds the process configuration read from the environment.
type AppConfig struct {
	// PageURL is the downloads page listing the daily bulletin; BaseURL
	// resolves relative hrefs found there.
	PageURL string `validate:"required,url"`
	BaseURL string `validate:"required,url"`

	// DataFile is where the extracted report is persisted; MirrorFile, when
	// set, receives a second copy for static hosting.
	DataFile   string `validate:"required"`
	MirrorFile string

	// ScrapeInterval drives the scheduler unless ScrapeTimes lists fixed
	// daily times ("HH:MM").
	ScrapeInterval time.Duration
	ScrapeTimes    []string `validate:"omitempty,dive,datetime=15:04"`

	HTTPTimeout time.Duration
	Port        string `validate:"required,numeric"`
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &AppConfig{}

	cfg.PageURL = getenvDefault("PAGE_URL", defaultPageURL)
	cfg.BaseURL = getenvDefault("BASE_URL", defaultBaseURL)
	cfg.DataFile = getenvDefault("DATA_FILE", "data/weather.json")
	cfg.MirrorFile = os.Getenv("MIRROR_FILE")

	interval, err := time.ParseDuration(getenvDefault("SCRAPE_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCRAPE_INTERVAL: %w", err)
	}
	cfg.ScrapeInterval = interval

	if v := os.Getenv("SCRAPE_TIMES"); v != "" {
		for _, t := range strings.Split(v, ",") {
			cfg.ScrapeTimes = append(cfg.ScrapeTimes, strings.TrimSpace(t))
		}
	}

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
