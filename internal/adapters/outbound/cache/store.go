package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// Store is a file-based implementation of domain.CheckCache, kept under the
// project's build cache directory.
type Store struct{}

func New() *Store { return &Store{} }

// Load reads the check state for a project. Returns (nil, nil) when no
// cache exists; a corrupt cache is discarded the same way, never surfaced
// as an error.
func (s *Store) Load(root string) (*domain.CheckState, error) {
	data, err := os.ReadFile(statePath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state domain.CheckState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, nil
	}
	if state.Hashes == nil {
		state.Hashes = make(map[string]string)
	}
	return &state, nil
}

// Save writes the check state, creating directories as needed.
func (s *Store) Save(root string, state *domain.CheckState) error {
	if err := os.MkdirAll(filepath.Dir(statePath(root)), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(statePath(root), data, 0644)
}

// Invalidate removes the cache file for the given project.
func (s *Store) Invalidate(root string) error {
	if err := os.Remove(statePath(root)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func statePath(root string) string {
	return filepath.Join(root, ".lumen", "cache", "check.json")
}
