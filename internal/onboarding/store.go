package onboarding

import "context"

// Well-known keys in the persisted client store
const (
	SessionKey      = "user"    // JSON Session of the logged-in identity
	sellerKeyPrefix = "seller_" // Prefix for per-email seller profiles
)

// SellerKey returns the store key holding the seller profile for an email.
// Existence of the key is itself the "is a registered seller" predicate.
func SellerKey(email string) string {
	return sellerKeyPrefix + email
}

// Store is the persisted key-value backend the controller reads and writes.
// Values are JSON-encoded. Injected so the controller is testable without a
// real persistence backend.
type Store interface {
	// Get reads the value at key into dest. Returns false when the key is absent.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set writes the value at key, JSON-encoded
	Set(ctx context.Context, key string, value any) error
	// Has reports whether key exists
	Has(ctx context.Context, key string) (bool, error)
}
