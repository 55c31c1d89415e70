package model

import "time"

// Role grants access to route groups.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered storefront customer or administrator.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Principal is the authenticated caller extracted from a token.
type Principal struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the principal may use admin routes.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
