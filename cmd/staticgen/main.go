// Command staticgen renders the dashboard template against the persisted
// report into a static HTML page, for hosting the latest bulletin without a
// running server.
package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"skibulletin/internal/config"
	"skibulletin/internal/store"
	"skibulletin/web"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	outPath := "docs/index.html"
	if v := os.Getenv("STATIC_OUT"); v != "" {
		outPath = v
	}

	st := store.NewFileStore(cfg.DataFile, "")

	var data web.PageData
	doc, err := st.Load()
	switch {
	case errors.Is(err, store.ErrNotFound):
		data.Error = "Weather data not available yet."
	case err != nil:
		log.Error().Err(err).Msg("reading stored report failed")
		data.Error = "Could not load weather data."
	default:
		data.Report = &doc
	}

	page, err := web.Render(data)
	if err != nil {
		log.Fatal().Err(err).Msg("rendering dashboard template failed")
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("creating output directory failed")
	}
	if err := os.WriteFile(outPath, page, 0o644); err != nil {
		log.Fatal().Err(err).Msg("writing static page failed")
	}

	log.Info().Str("path", outPath).Msg("static page generated")
}
