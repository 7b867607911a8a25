package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gallery/config"
	"gallery/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(validate validateFunc) *Verifier {
	return &Verifier{
		clientID: "client-123.apps.googleusercontent.com",
		validate: validate,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewVerifier_RequiresClientID(t *testing.T) {
	_, err := NewVerifier(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)

	_, err = NewVerifier(&config.Config{Identity: &config.IdentityConfig{Provider: "google"}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	var gotAudience string
	verifier := newTestVerifier(func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "10769150350006150715113082367",
			Claims: map[string]any{
				"email":          "ada@example.com",
				"name":           "Ada Lovelace",
				"email_verified": true,
			},
		}, nil
	})

	user, err := verifier.VerifyIDToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "client-123.apps.googleusercontent.com", gotAudience)
	assert.Equal(t, "10769150350006150715113082367", user.Subject)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.True(t, user.EmailVerified)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.Equal(t, entity.ProviderTypeGoogle, verifier.Provider())
}

func TestVerifier_VerifyIDToken_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
	}{
		{name: "validation error", err: errors.New("idtoken: token expired")},
		{name: "foreign issuer", payload: &idtoken.Payload{Issuer: "https://evil.example", Subject: "1"}},
		{name: "missing subject", payload: &idtoken.Payload{Issuer: "accounts.google.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, tt.err
			})

			user, err := verifier.VerifyIDToken(context.Background(), "token")
			assert.Nil(t, user)
			assert.Error(t, err)
		})
	}
}
