package seed

import (
	"context"
	"errors"
	"testing"

	"book_market/internal/domain"
	"book_market/internal/store"

	"github.com/stretchr/testify/require"
)

// --- helpers ---

// stubUserStore forces lookup/create failures, delegating otherwise
type stubUserStore struct {
	store.UserStore
	findErr error // Forced lookup failure
	makeErr error // Forced creation failure
}

func (s *stubUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.UserStore.FindByEmail(ctx, email)
}

func (s *stubUserStore) Create(ctx context.Context, name, email, plaintextPassword, userType string) (*domain.User, error) {
	if s.makeErr != nil {
		return nil, s.makeErr
	}
	return s.UserStore.Create(ctx, name, email, plaintextPassword, userType)
}

// --- tests ---

func TestEnsureAdmin_Idempotent(t *testing.T) {
	t.Parallel()

	users := store.NewMemoryUserStore()
	seeder := NewSeeder(users)
	ctx := context.Background()

	// First call creates the admin
	outcome, err := seeder.EnsureAdmin(ctx, "admin@example.com", "Admin", "seed-password-1")
	require.NoError(t, err)
	require.Equal(t, Created, outcome)

	// Second call observes the existing record and does not mutate
	outcome, err = seeder.EnsureAdmin(ctx, "admin@example.com", "Admin", "seed-password-1")
	require.NoError(t, err)
	require.Equal(t, AlreadyExists, outcome)

	// Exactly one admin record exists
	_, total, err := users.ListUsers(ctx, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	admin, err := users.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	require.Equal(t, domain.TypeAdmin, admin.UserType)
	require.NotEqual(t, "seed-password-1", string(admin.PasswordHash))
}

func TestEnsureAdmin_LostRaceReportsSeedError(t *testing.T) {
	t.Parallel()

	// A concurrent creator wins between the check and the create
	users := &stubUserStore{UserStore: store.NewMemoryUserStore(), makeErr: store.ErrDuplicateEmail}
	seeder := NewSeeder(users)

	outcome, err := seeder.EnsureAdmin(context.Background(), "admin@example.com", "Admin", "seed-password-1")
	require.ErrorIs(t, err, ErrSeed)
	// The outcome on an error path is never a success member
	require.NotEqual(t, Created, outcome)
	require.NotEqual(t, AlreadyExists, outcome)
}

func TestEnsureAdmin_LookupFailureReportsSeedError(t *testing.T) {
	t.Parallel()

	users := &stubUserStore{UserStore: store.NewMemoryUserStore(), findErr: errors.New("connection reset")}
	seeder := NewSeeder(users)

	outcome, err := seeder.EnsureAdmin(context.Background(), "admin@example.com", "Admin", "seed-password-1")
	require.ErrorIs(t, err, ErrSeed)
	require.NotEqual(t, Created, outcome)
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "created", Created.String())
	require.Equal(t, "already_exists", AlreadyExists.String())
	// The zero value is not a member of the enum
	require.Equal(t, "unknown", Outcome(0).String())
}
