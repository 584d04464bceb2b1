package identity

import (
	"time"

	"github.com/repairshop/backend/internal/domain/identity"
)

// ===== Auth DTOs =====

// RegisterRequest opens a new company together with its first administrator
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=200" example:"owner@garage.example"`
	Password    string `json:"password" binding:"required,min=8,max=72" example:"s3cret-pass"`
	FirstName   string `json:"firstName" binding:"required,notblank,max=100" example:"Ada"`
	LastName    string `json:"lastName" binding:"required,notblank,max=100" example:"Lovelace"`
	CompanyName string `json:"companyName" binding:"required,notblank,max=200" example:"Lovelace Motors"`
}

// LoginRequest carries credentials of an existing user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@garage.example"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// TokenResponse is returned by register and login
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LogoutInput identifies the token being revoked
type LogoutInput struct {
	TokenID string
	TTL     time.Duration
}

// UserResponse represents the signed-in user; the password hash is never included
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
