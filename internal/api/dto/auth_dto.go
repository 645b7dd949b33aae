package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Team     string          `json:"team"`
	Role     domain.UserRole `json:"role"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Team:     user.Team,
		Role:     user.Role,
	}
}
