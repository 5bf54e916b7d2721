package history

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.Mutex
	limit   int
	storage map[string][]Entry
}

// NewMemoryStore constructs an in-memory store for development and tests.
func NewMemoryStore(limit int) Store {
	if limit <= 0 {
		limit = 50
	}
	return &memoryStore{limit: limit, storage: make(map[string][]Entry)}
}

func (s *memoryStore) Append(_ context.Context, userID string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append(s.storage[userID], entry)
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}
	s.storage[userID] = entries
	return nil
}

func (s *memoryStore) List(_ context.Context, userID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]Entry, len(s.storage[userID]))
	copy(entries, s.storage[userID])
	return entries, nil
}
