package domain

import (
	"errors" // Error values
	"time"   // Timestamps

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// User types
const (
	TypeUser  = "user"  // Ordinary account
	TypeAdmin = "admin" // Administrator account
)

// ErrEmptyPassword is returned when an empty plaintext password is hashed
var ErrEmptyPassword = errors.New("password must not be empty")

// ValidUserType reports whether t is one of the two user kinds
func ValidUserType(t string) bool {
	return t == TypeUser || t == TypeAdmin
}

// PasswordHash is a bcrypt derivative of a plaintext password.
// The only way to obtain one is HashPassword, so a User can never
// be built around an unhashed secret.
type PasswordHash string

// HashPassword derives a PasswordHash from a plaintext password
func HashPassword(plaintext string) (PasswordHash, error) {
	// Refuse to hash an empty secret
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err // Return error if hashing fails
	}
	return PasswordHash(hash), nil
}

// Matches reports whether plaintext corresponds to the stored hash
func (h PasswordHash) Matches(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(plaintext)) == nil
}

// User Model
type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`              // Primary key, assigned on creation
	Name         string       `gorm:"not null" json:"name"`              // Display name
	Email        string       `gorm:"uniqueIndex;not null" json:"email"` // Globally unique, case-sensitive as stored
	PasswordHash PasswordHash `gorm:"not null" json:"-"`                 // Hashed password, never serialized
	UserType     string       `gorm:"default:user" json:"user_type"`     // Type: user or admin, immutable after creation
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`  // Timestamp of creation
}

// NewUser builds a User around a pre-hashed secret. Callers must hash
// the plaintext with HashPassword first; there is no constructor that
// accepts a plaintext password.
func NewUser(name, email string, hash PasswordHash, userType string) User {
	return User{
		Name:         name,     // Display name
		Email:        email,    // Unique email
		PasswordHash: hash,     // Pre-hashed secret
		UserType:     userType, // user or admin
	}
}
