package onboarding

import (
	"context"       // Store interface signature
	"encoding/json" // JSON encoding/decoding
	"sync"          // Guarding the map
)

// MemoryStore is an in-process Store. Used in tests and single-process setups.
type MemoryStore struct {
	mu      sync.RWMutex      // Guards entries
	entries map[string][]byte // JSON-encoded values by key
}

// NewMemoryStore returns an empty in-memory Store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Get reads the value at key into dest
func (s *MemoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	b, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil // Key does not exist
	}
	return true, json.Unmarshal(b, dest)
}

// Set stores the value at key, JSON-encoded
func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err // Return error if marshaling fails
	}
	s.mu.Lock()
	s.entries[key] = b
	s.mu.Unlock()
	return nil
}

// Has reports whether key exists
func (s *MemoryStore) Has(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	_, ok := s.entries[key]
	s.mu.RUnlock()
	return ok, nil
}
