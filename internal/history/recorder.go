package history

import (
	"context"
	"log/slog"
	"time"
)

// Recorder appends exchanges as a best-effort side effect. A failed write must
// never fail the request that produced it; it is logged and swallowed.
type Recorder struct {
	store  Store
	logger *slog.Logger
}

// NewRecorder builds a recorder over the given store.
func NewRecorder(store Store, logger *slog.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// Record appends exactly one entry for the exchange.
func (r *Recorder) Record(ctx context.Context, userID, query, response string) {
	if r == nil || r.store == nil {
		return
	}
	entry := Entry{Timestamp: time.Now().UTC(), Query: query, Response: response}
	if err := r.store.Append(ctx, userID, entry); err != nil {
		r.logger.Warn("record history", "user_id", userID, "error", err)
	}
}

// List returns the user's conversation log, oldest first.
func (r *Recorder) List(ctx context.Context, userID string) ([]Entry, error) {
	return r.store.List(ctx, userID)
}
