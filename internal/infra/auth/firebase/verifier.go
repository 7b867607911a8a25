// Package firebase verifies ID tokens minted by Firebase Authentication, which
// fronts Google and GitHub sign-in for the web client.
package firebase

import (
	"context"
	"log/slog"

	"gallery/config"
	"gallery/internal/domain/entity"
	"gallery/internal/domain/service"
	"gallery/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier checks Firebase ID tokens.
type Verifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewVerifier initializes the Firebase app for identity.projectId. Without a
// credentials path the application default credentials are used.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Verifier, error) {
	if cfg.Identity == nil || cfg.Identity.ProjectID == "" {
		return nil, errors.New("identity.projectId is required for firebase sign-in")
	}

	var opts []option.ClientOption
	if cfg.Identity.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Identity.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Identity.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &Verifier{client: client, logger: logger}, nil
}

func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeFirebase
}

func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify firebase id token")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	verified, _ := token.Claims["email_verified"].(bool)

	v.logger.DebugContext(ctx, "Firebase ID token verified",
		slog.String("uid", token.UID),
		slog.String("signInProvider", token.Firebase.SignInProvider),
	)

	return &service.OAuthUser{
		Subject:       token.UID,
		Email:         email,
		Name:          name,
		EmailVerified: verified,
		Provider:      entity.ProviderTypeFirebase,
	}, nil
}
