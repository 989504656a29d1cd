package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"skibulletin/internal/bulletin"
)

// FileStore persists the latest report as pretty-printed JSON. Writes go
// through a temp file and rename so the dashboard never reads a truncated
// document. An optional mirror path receives a second copy for static
// hosting.
type FileStore struct {
	path   string
	mirror string
	now    func() time.Time
}

// NewFileStore creates a FileStore writing to path. mirror may be empty.
func NewFileStore(path, mirror string) *FileStore {
	return &FileStore{path: path, mirror: mirror, now: time.Now}
}

// Save stamps the report with last_updated and writes it atomically. A failed
// mirror copy is logged but does not fail the save; the primary copy is
// already in place.
func (s *FileStore) Save(report bulletin.Report) error {
	doc := StoredReport{
		Report:      report,
		LastUpdated: s.now().Format(time.RFC3339),
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := writeAtomic(s.path, b); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}

	if s.mirror != "" {
		if err := writeAtomic(s.mirror, b); err != nil {
			log.Warn().Err(err).Str("path", s.mirror).Msg("mirror copy failed")
		}
	}
	return nil
}

// Load reads the persisted document. A missing file maps to ErrNotFound.
func (s *FileStore) Load() (StoredReport, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return StoredReport{}, ErrNotFound
		}
		return StoredReport{}, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc StoredReport
	if err := json.Unmarshal(b, &doc); err != nil {
		return StoredReport{}, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return doc, nil
}

func writeAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	// CreateTemp makes the file 0600; the data and mirror copies are read
	// by the dashboard and static hosting, so relax before the rename.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
