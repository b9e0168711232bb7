package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Sign-in timestamps

	"retirement_planner/internal/domain" // Domain models
	"retirement_planner/internal/store"  // Store errors
	"retirement_planner/internal/utils"  // JWT helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Stable external user ids
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// AuthSettings configures token issuing and the session cookie
type AuthSettings struct {
	JWTSecret    string // HMAC key for tokens
	CookieName   string // Session cookie carrying the token
	OwnerEmail   string // Registering with this email grants the admin role
	SecureCookie bool   // Mark the cookie Secure (production)
}

// Request struct for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"max=255"`                   // Display name
	Email    string `json:"email" binding:"required,email,max=320"`   // Login email
	Password string `json:"password" binding:"required,min=8,max=72"` // bcrypt only reads 72 bytes
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string       `json:"token"` // JWT token
	User  *domain.User `json:"user"`  // Signed-in user
}

// RegisterHandler creates a password account
func RegisterHandler(users UserRepository, cache utils.Cache, auth AuthSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		now := time.Now()
		user := domain.User{
			OpenID:       uuid.NewString(),            // Stable external id
			Name:         strings.TrimSpace(req.Name), // Display name
			Email:        req.Email,                   // Lowercased by the store
			PasswordHash: string(hash),                // bcrypt hash
			LoginMethod:  "password",                  // Only method supported
			Role:         domain.RoleUser,             // Default role
			LastSignedIn: now,                         // Registration counts as a sign-in
		}
		// The owner account is promoted on registration
		if auth.OwnerEmail != "" && strings.EqualFold(req.Email, auth.OwnerEmail) {
			user.Role = domain.RoleAdmin
		}
		// Attempt to create the user in the database
		if err := users.Create(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				// Duplicate email, return bad request
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
				return
			}
			logrus.WithFields(logrus.Fields{"email": req.Email, "error": err.Error()}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		invalidate(c.Request.Context(), cache, adminUsersPrefix) // Admin user list changed
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,   // New user ID
			"role":    user.Role, // Assigned role
		}).Info("User registered")
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// LoginHandler authenticates a user, returns a JWT and sets the session cookie
func LoginHandler(users UserRepository, auth AuthSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ctx := c.Request.Context()
		user, err := users.FindByEmail(ctx, req.Email) // Fetch user from database
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Login lookup failed")
			}
			// Unknown users and lookup failures look the same to the caller
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Issue the session token
		token, expires, err := utils.IssueSessionToken(user.ID, auth.JWTSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		now := time.Now()
		if err := users.TouchLastSignedIn(ctx, user.ID, now); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Warn("Failed to record sign-in")
		} else {
			user.LastSignedIn = now
		}
		setSessionCookie(c, auth, token, int(time.Until(expires).Seconds()))
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
	}
}

// MeHandler returns the authenticated user
func MeHandler(users UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			respondStoreError(c, err, "User not found", "Failed to fetch user", logrus.Fields{"user_id": userID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// LogoutHandler clears the session cookie. Bearer tokens stay valid until
// they expire.
func LogoutHandler(auth AuthSettings) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, auth, "", -1) // Negative max age deletes the cookie
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func setSessionCookie(c *gin.Context, auth AuthSettings, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", auth.SecureCookie, true)
}
