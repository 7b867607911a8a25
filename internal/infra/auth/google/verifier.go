// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"gallery/config"
	"gallery/internal/domain/entity"
	"gallery/internal/domain/service"
	"gallery/internal/errors"

	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier checks ID tokens against Google's published keys.
type Verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier builds a verifier for identity.clientId.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (*Verifier, error) {
	if cfg.Identity == nil || cfg.Identity.ClientID == "" {
		return nil, errors.New("identity.clientId is required for google sign-in")
	}

	return &Verifier{
		clientID: cfg.Identity.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}, nil
}

func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "validate google id token")
	}

	if _, ok := validIssuers[payload.Issuer]; !ok {
		return nil, errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if payload.Subject == "" {
		return nil, errors.New("id token has no subject")
	}

	user := &service.OAuthUser{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		Name:          stringClaim(payload.Claims, "name"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		Provider:      entity.ProviderTypeGoogle,
	}

	v.logger.DebugContext(ctx, "Google ID token verified", slog.String("subject", user.Subject))

	return user, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}

func boolClaim(claims map[string]any, key string) bool {
	switch value := claims[key].(type) {
	case bool:
		return value
	case string:
		return value == "true"
	default:
		return false
	}
}
