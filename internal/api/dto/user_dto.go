package dto

import "github.com/spec-kit/helpdesk-dashboard/internal/domain"

// UserCreateRequest payload for account creation.
type UserCreateRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Team     string          `json:"team"`
	Role     domain.UserRole `json:"role"`
}

// UserUpdateRequest payload for account updates. Empty fields are left as-is.
type UserUpdateRequest struct {
	Team string          `json:"team"`
	Role domain.UserRole `json:"role"`
}
