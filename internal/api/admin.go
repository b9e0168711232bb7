package api

import (
	"context"  // Health checks
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"retirement_planner/internal/utils" // Cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID           uint      `json:"id"`           // User ID
	Name         string    `json:"name"`         // Display name
	Email        string    `json:"email"`        // Login email
	Role         string    `json:"role"`         // User role
	LoginMethod  string    `json:"loginMethod"`  // How the account signs in
	CreatedAt    time.Time `json:"createdAt"`    // Registration time
	LastSignedIn time.Time `json:"lastSignedIn"` // Last successful login
}

// userList is the cached list payload
type userList struct {
	Users []UserAdminResponse `json:"users"` // List of users
	Pagination
	Cached bool `json:"cached"` // Served from cache
}

// ListUsersHandler returns all users, paginated
func ListUsersHandler(users UserRepository, cache utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := pageFromQuery(c)
		cacheKey := pageKey(adminUsersPrefix, page) // Cache key based on pagination parameters
		var cached userList
		// If cached data found, return it
		if cacheGet(ctx, cache, cacheKey, &cached) {
			cached.Cached = true // Indicate response is from cache
			c.JSON(http.StatusOK, cached)
			return
		}
		rows, total, err := users.List(ctx, page)
		if err != nil {
			respondStoreError(c, err, "User not found", "Failed to fetch users", logrus.Fields{})
			return
		}
		// Map users to response format
		resp := userList{Users: make([]UserAdminResponse, len(rows)), Pagination: newPagination(page, total)}
		for i, u := range rows {
			resp.Users[i] = UserAdminResponse{
				ID:           u.ID,           // User ID
				Name:         u.Name,         // Display name
				Email:        u.Email,        // Login email
				Role:         u.Role,         // User role
				LoginMethod:  u.LoginMethod,  // Login method
				CreatedAt:    u.CreatedAt,    // Registration time
				LastSignedIn: u.LastSignedIn, // Last login
			}
		}
		cacheSet(ctx, cache, cacheKey, resp) // Cache the response for future requests
		c.JSON(http.StatusOK, resp)
	}
}

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

// HealthHandler runs every check and answers 503 on the first failure
func HealthHandler(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logrus.WithFields(logrus.Fields{"dependency": name, "error": err.Error()}).Warn("Health check failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "dependency": name})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
