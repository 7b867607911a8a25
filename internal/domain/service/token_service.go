package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless session tokens.
type TokenService interface {
	// GenerateToken creates a signed session token for the principal.
	GenerateToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken parses the token and checks its signature and expiry.
	ValidateToken(tokenString string) (*Claims, error)
}
