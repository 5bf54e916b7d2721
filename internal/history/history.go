// Package history keeps the bounded per-user conversation log. Each ask
// appends one (query, response) pair; the store retains only the most recent
// entries, evicting the oldest first.
package history

import (
	"context"
	"time"
)

// Entry is one recorded assistant exchange.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
}

// Store persists conversation entries per user with FIFO eviction.
type Store interface {
	Append(ctx context.Context, userID string, entry Entry) error
	List(ctx context.Context, userID string) ([]Entry, error)
}
