package user

import (
	"context"
	"errors"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]User
}

// NewMemoryRepository constructs an in-memory repository for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]User)}
}

func (r *memoryRepository) Create(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[user.ID]; exists {
		return errors.New("user exists")
	}
	r.storage[user.ID] = user
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.storage[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) UpdateMpin(_ context.Context, id string, hash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.storage[id]
	if !ok {
		return ErrNotFound
	}
	user.MpinHash = hash
	user.MpinSet = true
	r.storage[id] = user
	return nil
}
