package db

import (
	"book_market/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// AutoMigrate creates or updates the schema for the identity core.
// The unique index on users.email is what enforces the one-user-per-email
// invariant under concurrent writers.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&domain.User{})
}
