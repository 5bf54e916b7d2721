package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidMpin indicates the supplied MPIN is not a 4-digit number.
	ErrInvalidMpin = errors.New("mpin must be a 4-digit number")
	// ErrMpinMismatch indicates MPIN and confirmation do not match.
	ErrMpinMismatch = errors.New("mpin and confirmation do not match")
	// ErrMpinNotSet indicates the user has not set an MPIN yet.
	ErrMpinNotSet = errors.New("mpin not set")
)

var mpinPattern = regexp.MustCompile(`^\d{4}$`)

// Service exposes credential and banking-fact operations.
type Service struct {
	repo Repository
}

// NewService builds a user service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves a user record.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// Register creates a user record. Used for seeding dev/test environments.
func (s *Service) Register(ctx context.Context, user User) error {
	return s.repo.Create(ctx, user)
}

// SetMpin validates and stores a bcrypt hash of the user's MPIN.
func (s *Service) SetMpin(ctx context.Context, userID, mpin, confirm string) error {
	if !mpinPattern.MatchString(mpin) {
		return ErrInvalidMpin
	}
	if mpin != confirm {
		return ErrMpinMismatch
	}
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(mpin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash mpin: %w", err)
	}
	return s.repo.UpdateMpin(ctx, userID, hash)
}

// VerifyMpin checks the supplied MPIN against the stored hash. A mismatch is
// reported as (false, nil); errors are reserved for missing users or unset MPINs.
func (s *Service) VerifyMpin(ctx context.Context, userID, mpin string) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if !user.MpinSet || len(user.MpinHash) == 0 {
		return false, ErrMpinNotSet
	}
	if err := bcrypt.CompareHashAndPassword(user.MpinHash, []byte(mpin)); err != nil {
		return false, nil
	}
	return true, nil
}

// MpinSet reports whether the user has an MPIN on file.
func (s *Service) MpinSet(ctx context.Context, userID string) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.MpinSet, nil
}

// Facts returns the demo banking facts for a user. Accounts without a linked
// ATM card carry zero balances and no loans.
func (s *Service) Facts(ctx context.Context, userID string) (Facts, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return Facts{}, err
	}

	facts := Facts{CreditLimit: 50_000}
	if user.AtmLinked {
		facts.Balance = 50_000
		facts.Loans = []Loan{{Type: "Personal Loan", Amount: 200_000, Outstanding: 150_000}}
	}
	return facts, nil
}
