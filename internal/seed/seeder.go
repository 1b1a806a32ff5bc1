package seed

import (
	"context" // Context for store operations
	"errors"  // Error values
	"fmt"     // Error wrapping

	"book_market/internal/domain" // Importing domain models
	"book_market/internal/store"  // User store
)

// Outcome of an EnsureAdmin invocation
type Outcome int

// Seeding outcomes. The zero Outcome is deliberately not a member, so an
// outcome read off an error path can never pass for success.
const (
	Created       Outcome = iota + 1 // The admin record was created by this call
	AlreadyExists                    // An admin record with this email already existed
)

// String returns a readable outcome name
func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case AlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// ErrSeed wraps any failure while ensuring the admin record
var ErrSeed = errors.New("admin seeding failed")

// Seeder idempotently ensures the administrator record exists
type Seeder struct {
	Users store.UserStore // Backing user store
}

// NewSeeder returns a Seeder over the given user store
func NewSeeder(users store.UserStore) *Seeder {
	return &Seeder{Users: users}
}

// EnsureAdmin makes sure exactly one admin user with the given email exists.
// It checks first, then creates; the store's unique index arbitrates the case
// where a concurrent creator wins between the two steps, which surfaces here
// as a wrapped ErrSeed rather than a crash. Safe to call any number of times.
func (s *Seeder) EnsureAdmin(ctx context.Context, email, name, password string) (Outcome, error) {
	// Look for an existing record first
	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("%w: lookup: %v", ErrSeed, err)
	}
	// If found, nothing to do
	if existing != nil {
		return AlreadyExists, nil
	}
	// Create the admin user
	if _, err := s.Users.Create(ctx, name, email, password, domain.TypeAdmin); err != nil {
		return 0, fmt.Errorf("%w: create: %v", ErrSeed, err)
	}
	return Created, nil
}
