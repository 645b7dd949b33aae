package domain

import "time"

// UserRole enumerates dashboard access levels.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleViewer UserRole = "viewer"
)

// User is a dashboard account. Team scopes which tickets the user sees.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Team         string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may manage other accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
