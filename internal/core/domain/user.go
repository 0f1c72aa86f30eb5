package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the known permission tiers.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models an authenticated actor in the system. Users are created on
// registration and never mutated afterwards; only a sample-data reset
// replaces them wholesale.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Claims is the identity attached to a request after token verification.
// It is derived transiently from a signed token and never persisted.
type Claims struct {
	UserID string
	Role   string
}
