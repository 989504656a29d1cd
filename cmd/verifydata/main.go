// Command verifydata exits non-zero unless the persisted bulletin report is
// from today. CI runs it to catch a scraper that silently stopped updating.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"skibulletin/internal/config"
	"skibulletin/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	st := store.NewFileStore(cfg.DataFile, "")
	doc, err := st.Load()
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DataFile).Msg("no bulletin data to verify")
	}

	date, err := time.Parse("2006-01-02", doc.Date)
	if err != nil {
		log.Fatal().Str("date", doc.Date).Msg("stored date is not in YYYY-MM-DD form")
	}

	today := time.Now()
	if date.Year() != today.Year() || date.YearDay() != today.YearDay() {
		log.Fatal().
			Str("stored", doc.Date).
			Str("today", today.Format("2006-01-02")).
			Msg("bulletin data is stale")
	}

	log.Info().Str("date", doc.Date).Msg("bulletin data is from today")
}
