package store

import (
	"sync"

	"chorus/internal/catalog"
)

// Store holds the currently published catalog snapshot. Readers always see a
// complete catalog: Replace swaps the pointer under the write lock, so a
// request observes either the previous snapshot or the new one, never a
// half-built mix.
type Store struct {
	mu      sync.RWMutex
	current *catalog.Catalog
}

// New creates a Store holding an empty catalog so handlers never see nil.
func New() *Store {
	return &Store{current: catalog.New(nil, nil)}
}

// Current returns the published snapshot. The returned catalog is immutable
// once published and safe to read without further locking.
func (s *Store) Current() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace publishes a new snapshot.
func (s *Store) Replace(c *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}
