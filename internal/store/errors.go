package store

import (
	"errors" // Error values

	"github.com/go-sql-driver/mysql" // MySQL driver errors
)

// Typed store outcomes
var (
	ErrDuplicateEmail  = errors.New("email already registered") // A user with this email already exists
	ErrNotFound        = errors.New("user not found")           // No user matched the lookup
	ErrInvalidUserType = errors.New("invalid user type")        // Only user and admin exist
)

// mysqlDuplicateEntry is the MySQL error number for a unique-key violation
const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a unique-key violation from the
// backing store. The store's unique index is the canonical "already exists"
// signal, not an application-level prior read.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	// Check for MySQL duplicate entry error
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}
