package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"book_market/internal/store" // User store

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID       uint   `json:"id"`        // User ID
	Name     string `json:"name"`      // Display name
	Email    string `json:"email"`     // Account email
	UserType string `json:"user_type"` // User type
}

// ListUsersHandler returns all users, paginated
func ListUsersHandler(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			// If valid, set page size
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		// Fetch one page of users plus the total count
		list, total, err := users.ListUsers(c.Request.Context(), offset, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"}) // Return on error
			return
		}
		// The total number of pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		// Map users to response format; the password hash never leaves the store layer
		resp := make([]UserAdminResponse, len(list))
		for i, u := range list {
			resp[i] = UserAdminResponse{
				ID:       u.ID,       // User ID
				Name:     u.Name,     // Display name
				Email:    u.Email,    // Account email
				UserType: u.UserType, // User type
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"users":       resp,       // List of users
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of users
			"total_pages": totalPages, // Total pages
		})
	}
}
