package dto

import "github.com/amirhossein-jamali/family-ledger/internal/domain/entity"

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for POST /auth/login.
// Identifier accepts either a username or an email address
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// SessionResponse carries a signed token and the authenticated user's profile
type SessionResponse struct {
	AccessToken string               `json:"accessToken"`
	User        entity.PublicProfile `json:"user"`
}
