package store

import (
	"errors"

	"skibulletin/internal/bulletin"
)

// ErrNotFound is returned before the first successful scrape has persisted a
// report.
var ErrNotFound = errors.New("no bulletin report stored")

// StoredReport is a persisted report plus the time it was written.
type StoredReport struct {
	bulletin.Report
	LastUpdated string `json:"last_updated"`
}

// Store is the contract the file store (and the in-memory test store) must
// satisfy. A saved report fully supersedes the previous one.
type Store interface {
	Save(report bulletin.Report) error
	Load() (StoredReport, error)
}
