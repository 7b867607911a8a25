package usecase

import (
	"context"

	"gallery/internal/domain/entity"
)

// SessionOutput is a signed session token and the principal it was issued to.
type SessionOutput struct {
	Token string
	User  *entity.User // nil for the admin session
	Roles entity.Roles
}

// SessionUsecase issues session tokens for collectors and the site operator.
type SessionUsecase interface {
	// SignInWithOAuth verifies a provider ID token and upserts the collector.
	SignInWithOAuth(ctx context.Context, idToken string) (*SessionOutput, error)

	// AdminLogin checks the operator password.
	AdminLogin(ctx context.Context, password string) (*SessionOutput, error)
}
