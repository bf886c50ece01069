package dto

import (
	"time"

	"github.com/retailbank/bank_backend/internal/core/domain"
)

// RegisterUserRequest defines the data needed to register a new user.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for token issuance.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest defines the self-service profile fields a user may
// change. Omitted fields are left untouched; email is immutable.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to wire form.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		IsStaff:   user.IsStaff,
		CreatedAt: user.CreatedAt,
	}
}
