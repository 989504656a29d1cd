package scrape

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"skibulletin/internal/bulletin"
	"skibulletin/internal/store"
)

// Scraper runs the full bulletin pipeline: locate the daily PDF link on the
// downloads page, download the PDF, reassemble its table, extract the fields,
// and persist the report.
type Scraper struct {
	pageURL string
	baseURL string
	fetcher *Fetcher
	store   store.Store

	// parseTables is swappable in tests; production uses the PDF parser.
	parseTables func([]byte) ([][][]string, error)
}

// New creates a Scraper persisting into st.
func New(pageURL, baseURL string, client *http.Client, st store.Store) *Scraper {
	return &Scraper{
		pageURL:     pageURL,
		baseURL:     baseURL,
		fetcher:     NewFetcher(client),
		store:       st,
		parseTables: parseBulletinTables,
	}
}

// Run executes one scrape. A failing stage aborts the run and leaves
// previously persisted data untouched; failures are logged, never raised.
func (s *Scraper) Run(ctx context.Context) {
	log.Info().Str("page", s.pageURL).Msg("starting bulletin scrape")

	page, err := s.fetcher.Get(ctx, s.pageURL)
	if err != nil {
		log.Error().Err(err).Str("url", s.pageURL).Msg("fetching downloads page failed")
		return
	}

	link, ok := LocateBulletinLink(page, s.baseURL)
	if !ok {
		log.Warn().Msg("no bulletin link found on downloads page")
		return
	}
	log.Info().Str("url", link).Msg("found bulletin link")

	pdfBytes, err := s.fetcher.Get(ctx, link)
	if err != nil {
		log.Error().Err(err).Str("url", link).Msg("downloading bulletin pdf failed")
		return
	}

	tables, err := s.parseTables(pdfBytes)
	if err != nil {
		log.Error().Err(err).Msg("parsing bulletin pdf failed")
		return
	}

	report := bulletin.Extract(tables)
	log.Info().Interface("report", report).Msg("extracted bulletin report")

	if err := s.store.Save(report); err != nil {
		log.Error().Err(err).Msg("persisting bulletin report failed")
		return
	}
	log.Info().Msg("bulletin scrape complete")
}
