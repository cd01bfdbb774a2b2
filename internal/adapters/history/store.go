// Package history keeps a local ledger of submitted builds.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildHistoryStore using a flat JSON file keyed by fingerprint.
// The file is read on the first Put, so an unreadable ledger only fails recording.
type Store struct {
	path    string
	mu      sync.Mutex
	loaded  bool
	records map[string]domain.BuildRecord
}

// NewStore creates a history store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{
		path:    filepath.Clean(path),
		records: make(map[string]domain.BuildRecord),
	}
}

// load reads the ledger once. Callers must hold the lock.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrHistoryReadFailed, err.Error()), "path", s.path)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.records); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrHistoryReadFailed, err.Error()), "path", s.path)
		}
	}

	s.loaded = true
	return nil
}

// save writes the ledger through a temp file so a crash never leaves a truncated file.
// Callers must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrHistoryWriteFailed, err.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrHistoryWriteFailed, err.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".builds-*.json")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrHistoryWriteFailed, err.Error()), "path", dir)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(domain.ErrHistoryWriteFailed, err.Error())
	}
	if err := tmp.Chmod(domain.PrivateFilePerm); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(domain.ErrHistoryWriteFailed, err.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(domain.ErrHistoryWriteFailed, err.Error())
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrHistoryWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}

// Put stores the record and persists the ledger. A ledger that cannot be read is left
// untouched and reported as domain.ErrHistoryReadFailed.
func (s *Store) Put(record domain.BuildRecord) error {
	if record.Fingerprint == "" {
		return zerr.Wrap(domain.ErrHistoryWriteFailed, "record has no fingerprint")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	s.records[record.Fingerprint] = record
	return s.save()
}
