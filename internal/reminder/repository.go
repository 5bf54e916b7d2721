package reminder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists reminder records. Reminders are append-only; there is no
// update or delete in this design.
type Repository interface {
	Create(ctx context.Context, reminder Reminder) error
	ListByUser(ctx context.Context, userID string) ([]Reminder, error)
}

// PostgresRepository stores reminders in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a reminder record.
func (r *PostgresRepository) Create(ctx context.Context, reminder Reminder) error {
	reminderID, err := uuid.Parse(reminder.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO reminders (id, user_id, bill_type, date_text, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		reminderID, reminder.UserID, reminder.BillType, reminder.DateText, reminder.Status, reminder.CreatedAt.UTC())
	return err
}

// ListByUser fetches all reminders belonging to a user, oldest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Reminder, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, bill_type, date_text, status, created_at
        FROM reminders WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []Reminder
	for rows.Next() {
		var rec Reminder
		var id uuid.UUID
		var createdAt time.Time
		if err := rows.Scan(&id, &rec.UserID, &rec.BillType, &rec.DateText, &rec.Status, &createdAt); err != nil {
			return nil, err
		}
		rec.ID = id.String()
		rec.CreatedAt = createdAt.UTC()
		reminders = append(reminders, rec)
	}
	return reminders, rows.Err()
}
