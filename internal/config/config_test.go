package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.PageURL != defaultPageURL {
		t.Errorf("PageURL = %q", cfg.PageURL)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.DataFile != "data/weather.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.ScrapeInterval != 6*time.Hour {
		t.Errorf("ScrapeInterval = %v", cfg.ScrapeInterval)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if len(cfg.ScrapeTimes) != 0 {
		t.Errorf("ScrapeTimes = %v, want empty", cfg.ScrapeTimes)
	}
}

func TestLoadScrapeTimes(t *testing.T) {
	t.Setenv("SCRAPE_TIMES", "08:00, 12:30,18:00")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"08:00", "12:30", "18:00"}
	if len(cfg.ScrapeTimes) != len(want) {
		t.Fatalf("ScrapeTimes = %v, want %v", cfg.ScrapeTimes, want)
	}
	for i := range want {
		if cfg.ScrapeTimes[i] != want[i] {
			t.Errorf("ScrapeTimes[%d] = %q, want %q", i, cfg.ScrapeTimes[i], want[i])
		}
	}
}

func TestLoadRejectsBadScrapeTimes(t *testing.T) {
	t.Setenv("SCRAPE_TIMES", "8am")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-HH:MM scrape time")
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	t.Setenv("SCRAPE_INTERVAL", "often")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "SCRAPE_INTERVAL") {
		t.Fatalf("expected SCRAPE_INTERVAL error, got %v", err)
	}
}

func TestLoadRejectsBadPageURL(t *testing.T) {
	t.Setenv("PAGE_URL", "not a url")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an invalid PAGE_URL")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_FILE", "/data/weather.json")
	t.Setenv("MIRROR_FILE", "/docs/weather.json")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "/data/weather.json" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.MirrorFile != "/docs/weather.json" {
		t.Errorf("MirrorFile = %q", cfg.MirrorFile)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
}
