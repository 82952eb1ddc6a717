// Package memory is the default client storage backend. Values live for the
// lifetime of the process.
package memory

import (
	"context"
	"sync"
)

type Storage struct {
	mu    sync.RWMutex
	items map[string]string
}

func New() *Storage {
	return &Storage{items: make(map[string]string)}
}

// GetItem returns "" for a key that was never set.
func (s *Storage) GetItem(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.items[key], nil
}

func (s *Storage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value

	return nil
}

func (s *Storage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)

	return nil
}

func (s *Storage) Close() error {
	return nil
}
