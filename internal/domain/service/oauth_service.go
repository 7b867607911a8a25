package service

import (
	"context"

	"gallery/internal/domain/entity"
)

// OAuthUser is the identity a provider vouched for.
type OAuthUser struct {
	Subject       string // provider's stable "sub" claim
	Email         string
	Name          string
	EmailVerified bool
	Provider      entity.ProviderType
}

// IdentityVerifier checks an ID token issued by a third-party OAuth provider.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
	Provider() entity.ProviderType
}
