package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Store persists one keyed collection as a single JSON document on
// disk. Reads degrade to an empty collection instead of failing;
// writes replace the whole file.
type Store[T any] struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

func New[T any](path string, logger *zap.Logger) *Store[T] {
	return &Store[T]{
		path:   path,
		logger: logger,
	}
}

// LoadAll returns every well-formed record in the backing file. A
// missing file is an empty collection. An unreadable or corrupt file is
// logged and also treated as empty. Records are decoded one by one so
// a single bad record never takes its siblings down with it.
func (s *Store[T]) LoadAll() map[string]T {
	records := make(map[string]T)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cannot read store file",
				zap.String("path", s.path),
				zap.Error(err))
		}
		return records
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("corrupt store file",
			zap.String("path", s.path),
			zap.Error(err))
		return records
	}

	for id, body := range raw {
		var record T
		if err := json.Unmarshal(body, &record); err != nil {
			s.logger.Warn("skipping bad record",
				zap.String("path", s.path),
				zap.String("id", id),
				zap.Error(err))
			continue
		}
		records[id] = record
	}
	return records
}

// SaveAll replaces the backing file with the given collection. The
// write goes to a temp file first so the old snapshot survives a
// failure mid-write.
func (s *Store[T]) SaveAll(records map[string]T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir for %s: %w", s.path, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Update runs one load-mutate-save cycle. fn gets the full snapshot and
// mutates it in place; returning an error aborts before anything is
// written. Cycles on the same store are serialized, so two callers
// cannot interleave their loads and saves.
func (s *Store[T]) Update(fn func(map[string]T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.LoadAll()
	if err := fn(records); err != nil {
		return err
	}
	return s.SaveAll(records)
}
