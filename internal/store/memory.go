package store

import (
	"sync"
	"time"

	"skibulletin/internal/bulletin"
)

// MemoryStore is a concurrency-safe in-memory Store, mainly for handler
// tests. Only the latest report is retained.
type MemoryStore struct {
	mu  sync.RWMutex
	doc StoredReport
	set bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the stored report and stamps last_updated.
func (s *MemoryStore) Save(report bulletin.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = StoredReport{
		Report:      report,
		LastUpdated: time.Now().Format(time.RFC3339),
	}
	s.set = true
	return nil
}

// Load returns the stored report, or ErrNotFound before the first Save.
func (s *MemoryStore) Load() (StoredReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return StoredReport{}, ErrNotFound
	}
	return s.doc, nil
}
