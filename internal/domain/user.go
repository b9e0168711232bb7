package domain

import "time"

// Roles a user can hold
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User Model
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`                                   // Primary key
	OpenID       string     `gorm:"size:64;uniqueIndex;not null" json:"openId"`             // Stable external identifier
	Name         string     `gorm:"size:255" json:"name"`                                   // Display name
	Email        string     `gorm:"size:320;uniqueIndex;not null" json:"email"`             // Login email, stored lowercase
	PasswordHash string     `gorm:"not null" json:"-"`                                      // bcrypt hash, never serialized
	LoginMethod  string     `gorm:"size:64;default:password" json:"loginMethod"`            // How the account signs in
	Role         string     `gorm:"size:16;default:user;not null" json:"role"`              // Role: user or admin
	CreatedAt    time.Time  `json:"createdAt"`                                              // Creation time
	UpdatedAt    time.Time  `json:"updatedAt"`                                              // Last update time
	LastSignedIn time.Time  `json:"lastSignedIn"`                                           // Last successful login
	Scenarios    []Scenario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Owned scenarios
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
