package store

import (
	"context" // Context for database operations
	"errors"  // Error matching

	"book_market/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserStore persists user identity records
type UserStore interface {
	// Create hashes the plaintext password and stores a new user.
	// Returns ErrDuplicateEmail if a user with the same email exists.
	Create(ctx context.Context, name, email, plaintextPassword, userType string) (*domain.User, error)
	// FindByEmail returns the user with the given email, or (nil, nil) when absent
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// DeleteByID removes a user by ID. Returns ErrNotFound if no such user exists.
	DeleteByID(ctx context.Context, id uint) error
	// ListUsers returns one page of users and the total count
	ListUsers(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

// GormUserStore implements UserStore with GORM over MySQL
type GormUserStore struct {
	db *gorm.DB // Database handle
}

// NewGormUserStore returns a new GormUserStore
func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// Create hashes the password and inserts the user. Hashing is mandatory and
// happens before the record becomes durable; no call path can bypass it
// because domain.NewUser only accepts a domain.PasswordHash.
func (s *GormUserStore) Create(ctx context.Context, name, email, plaintextPassword, userType string) (*domain.User, error) {
	// Only the two user kinds exist
	if !domain.ValidUserType(userType) {
		return nil, ErrInvalidUserType
	}
	// Hash the plaintext password first
	hash, err := domain.HashPassword(plaintextPassword)
	if err != nil {
		return nil, err // Return error if hashing fails
	}
	user := domain.NewUser(name, email, hash, userType)
	// Attempt to create the user; the unique index on email arbitrates races
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Map unique-key violations to the typed duplicate outcome
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks up a user by email. Absence is not an error.
func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		// Absent user is a nil result, not a failure
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// DeleteByID removes a user record by its primary key
func (s *GormUserStore) DeleteByID(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return res.Error // Return error if deletion fails
	}
	// No rows deleted means the user did not exist
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUsers returns a page of users plus the total count
func (s *GormUserStore) ListUsers(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var total int64 // Total user count
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err // Return error if counting fails
	}
	var users []domain.User // Slice to hold users
	if err := s.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err // Return error if fetching fails
	}
	return users, total, nil
}
