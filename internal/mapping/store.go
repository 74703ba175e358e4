// Package mapping persists raw-identifier to canonical-symbol associations
// in a single JSON file. The file is read in full and written in full on
// each access; once written, an entry is authoritative until overwritten.
package mapping

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store is the single writer of the mapping file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path. The file is not
// required to exist; a missing store reads as an empty mapping.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get looks up the symbol for a key. It never fails: a missing or
// unreadable file is treated as an empty mapping.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sym, ok := s.load()[key]
	return sym, ok
}

// Put stores key→symbol, overwriting any prior value. The write is fully
// resolved to disk before Put returns.
func (s *Store) Put(key, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.load()
	m[key] = symbol
	return s.save(m)
}

// All returns a copy of every entry.
func (s *Store) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() map[string]string {
	m := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		// Unreadable store reads as empty; the next Put rewrites it whole.
		return make(map[string]string)
	}
	return m
}

func (s *Store) save(m map[string]string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
