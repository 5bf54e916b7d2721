package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service exposes reminder operations.
type Service struct {
	repo Repository
}

// NewService builds a reminder service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures data required to create a reminder.
type CreateInput struct {
	UserID   string
	BillType string
	DateText string
}

// Create persists a new active reminder. The write either fully succeeds or
// fails; a failure is surfaced to the caller so the assistant can answer with
// an error instead of a false confirmation.
func (s *Service) Create(ctx context.Context, input CreateInput) (Reminder, error) {
	rec := Reminder{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		BillType:  input.BillType,
		DateText:  input.DateText,
		Status:    statusActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Reminder{}, fmt.Errorf("create reminder: %w", err)
	}
	return rec, nil
}

// ListByUser returns the user's reminders, oldest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Reminder, error) {
	return s.repo.ListByUser(ctx, userID)
}
