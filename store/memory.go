package store

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed [Store] for hosts that keep contract state in
// process memory (and for tests). Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory membership store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

func (s *MemoryStore) Load(_ context.Context, account string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[account]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, account string, blob []byte) error {
	stored := make([]byte, len(blob))
	copy(stored, blob)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[account] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, account)
	return nil
}

// Accounts implements [Scanner].
func (s *MemoryStore) Accounts(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.blobs))
	for account := range s.blobs {
		out = append(out, account)
	}
	return out, nil
}
