package reminder

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string][]Reminder
}

// NewMemoryRepository constructs an in-memory repository for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string][]Reminder)}
}

func (r *memoryRepository) Create(_ context.Context, reminder Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[reminder.UserID] = append(r.storage[reminder.UserID], reminder)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reminders := make([]Reminder, len(r.storage[userID]))
	copy(reminders, r.storage[userID])
	return reminders, nil
}
