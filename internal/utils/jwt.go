package utils

import (
	"time" // Time for token expiration

	"book_market/internal/domain" // Importing domain models

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claims carry the user identity in the token. Name, Email and UserType are
// the Session content the client holds between requests.
type Claims struct {
	UserID               uint   `json:"user_id"`  // Custom claim for user ID
	Name                 string `json:"name"`     // Display name
	Email                string `json:"email"`    // Account email
	UserType             string `json:"userType"` // user or admin
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT creates a JWT token for a given user
func GenerateJWT(user *domain.User, secret string) (string, error) {
	// Set token claims
	claims := Claims{
		UserID:   user.ID,       // Custom claim for user ID
		Name:     user.Name,     // Display name
		Email:    user.Email,    // Account email
		UserType: user.UserType, // user or admin
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // Token expires in 24 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),                     // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
