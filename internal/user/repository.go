package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the user does not exist.
var ErrNotFound = errors.New("user not found")

// Repository persists user records.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByID(ctx context.Context, id string) (User, error)
	UpdateMpin(ctx context.Context, id string, hash []byte) error
}

// PostgresRepository stores users in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a user record.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO users (id, phone, name, mpin_hash, mpin_set, atm_linked, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		userID, user.Phone, user.Name, user.MpinHash, user.MpinSet, user.AtmLinked, user.CreatedAt.UTC())
	return err
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, phone, name, mpin_hash, mpin_set, atm_linked, created_at
        FROM users WHERE id = $1`, userID)

	var u User
	var idVal uuid.UUID
	var createdAt time.Time
	if err := row.Scan(&idVal, &u.Phone, &u.Name, &u.MpinHash, &u.MpinSet, &u.AtmLinked, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.ID = idVal.String()
	u.CreatedAt = createdAt.UTC()
	return u, nil
}

// UpdateMpin stores a new MPIN hash and marks the MPIN as set.
func (r *PostgresRepository) UpdateMpin(ctx context.Context, id string, hash []byte) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `UPDATE users SET mpin_hash = $2, mpin_set = TRUE WHERE id = $1`, userID, hash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
