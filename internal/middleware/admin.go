package middleware

import (
	"net/http" // HTTP status codes

	"book_market/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware restricts a route group to admin sessions. The user
// type comes from the verified token, so no database round-trip is needed.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFromContext(c) // Get session from context
		// Check if a session exists in context
		if !ok {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check if the session belongs to an admin
		if session.UserType != domain.TypeAdmin {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
