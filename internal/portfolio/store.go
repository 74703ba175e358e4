// Package portfolio maintains the manually edited position file and
// values it against the latest metric rows.
package portfolio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"BourseDash/internal/model"
)

// Store persists positions as one JSON array, read and written whole.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads all positions. A missing file loads as an empty portfolio.
func (s *Store) Load() ([]model.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Position{}, nil
		}
		return nil, err
	}
	var positions []model.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// Save writes the whole position list to disk.
func (s *Store) Save(positions []model.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(positions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
