package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const historyKeyPrefix = "chat:history:v1:"

// RedisStore keeps each user's log in a Redis list. LPUSH followed by LTRIM is
// atomic per key, which serializes concurrent appends for the same user.
type RedisStore struct {
	client *redis.Client
	limit  int64
}

// NewRedisStore builds a Redis-backed store bounded to limit entries per user.
func NewRedisStore(client *redis.Client, limit int) *RedisStore {
	if limit <= 0 {
		limit = 50
	}
	return &RedisStore{client: client, limit: int64(limit)}
}

func historyKey(userID string) string {
	return historyKeyPrefix + userID
}

// Append pushes an entry and trims the list to the configured bound.
func (s *RedisStore) Append(ctx context.Context, userID string, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode history entry: %w", err)
	}

	key := historyKey(userID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, s.limit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// List returns the user's entries in chronological order, oldest first.
func (s *RedisStore) List(ctx context.Context, userID string) ([]Entry, error) {
	raw, err := s.client.LRange(ctx, historyKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	// LPUSH stores newest first; reverse into insertion order.
	entries := make([]Entry, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var entry Entry
		if err := json.Unmarshal([]byte(raw[i]), &entry); err != nil {
			return nil, fmt.Errorf("decode history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
