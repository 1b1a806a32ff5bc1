package store

import (
	"context" // UserStore signatures
	"sort"    // Stable listing order
	"sync"    // Guarding the map
	"time"    // Creation timestamps

	"book_market/internal/domain" // Importing domain models
)

// MemoryUserStore implements UserStore in process memory. It honors the same
// contract as GormUserStore — mandatory hashing, one user per email, typed
// outcomes — and backs tests and fixtures that must not need a live MySQL.
type MemoryUserStore struct {
	mu     sync.Mutex             // Guards users and nextID
	users  map[string]domain.User // Users by email
	nextID uint                   // Next primary key
}

// NewMemoryUserStore returns an empty in-memory UserStore
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]domain.User), nextID: 1}
}

// Create hashes the password and stores a new user. The lock plays the role
// the unique index plays in MySQL: under concurrent creators for the same
// email, exactly one succeeds and the rest observe ErrDuplicateEmail.
func (s *MemoryUserStore) Create(_ context.Context, name, email, plaintextPassword, userType string) (*domain.User, error) {
	// Only the two user kinds exist
	if !domain.ValidUserType(userType) {
		return nil, ErrInvalidUserType
	}
	// Hash the plaintext password first
	hash, err := domain.HashPassword(plaintextPassword)
	if err != nil {
		return nil, err // Return error if hashing fails
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// One user per email
	if _, ok := s.users[email]; ok {
		return nil, ErrDuplicateEmail
	}
	user := domain.NewUser(name, email, hash, userType)
	user.ID = s.nextID // Assign the identifier on creation
	user.CreatedAt = time.Now()
	s.nextID++
	s.users[email] = user
	return &user, nil
}

// FindByEmail looks up a user by email. Absence is not an error.
func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, nil // Absent user is a nil result, not a failure
	}
	return &user, nil
}

// DeleteByID removes a user record by its identifier
func (s *MemoryUserStore) DeleteByID(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, user := range s.users {
		if user.ID == id {
			delete(s.users, email)
			return nil
		}
	}
	// No record deleted means the user did not exist
	return ErrNotFound
}

// ListUsers returns a page of users ordered by ID plus the total count
func (s *MemoryUserStore) ListUsers(_ context.Context, offset, limit int) ([]domain.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := int64(len(all))
	// Clamp the page to the available range
	if offset >= len(all) {
		return []domain.User{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}
