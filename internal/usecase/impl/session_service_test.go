package impl

import (
	"context"
	"testing"

	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/service"
	"gallery/internal/errors"
	mockRepo "gallery/internal/mocks/repository"
	mockSvc "gallery/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_SignInWithOAuth_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	verifier := mockSvc.NewMockIdentityVerifier(t)
	tokens := mockSvc.NewMockTokenService(t)
	svc := NewSessionService(SessionServiceParams{
		UserRepo:     userRepo,
		Verifier:     verifier,
		TokenService: tokens,
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		Config:       testConfig(),
		Logger:       discardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.OAuthUser{
		Subject:  "1234567890",
		Email:    "ada@example.com",
		Provider: entity.ProviderTypeGoogle,
	}, nil)
	userRepo.EXPECT().UpsertByProvider(ctx, &entity.User{
		Name:            "ada",
		Email:           "ada@example.com",
		Provider:        entity.ProviderTypeGoogle,
		ProviderSubject: "1234567890",
	}).Return(&entity.User{ID: userID, Name: "ada", Email: "ada@example.com", Provider: entity.ProviderTypeGoogle}, nil)
	tokens.EXPECT().GenerateToken(userID, []string{"collector"}).Return("signed.jwt", nil)

	out, err := svc.SignInWithOAuth(ctx, "  id-token ")

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", out.Token)
	assert.Equal(t, userID, out.User.ID)
	assert.True(t, out.Roles.Contains(entity.RoleCollector))
}

func TestSessionService_SignInWithOAuth_RejectedToken(t *testing.T) {
	verifier := mockSvc.NewMockIdentityVerifier(t)
	svc := NewSessionService(SessionServiceParams{
		UserRepo:     mockRepo.NewMockUserRepository(t),
		Verifier:     verifier,
		TokenService: mockSvc.NewMockTokenService(t),
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		Config:       testConfig(),
		Logger:       discardLogger(),
	})
	ctx := context.Background()

	verifier.EXPECT().VerifyIDToken(ctx, "forged").Return(nil, errors.New("token expired"))
	verifier.EXPECT().Provider().Return(entity.ProviderTypeFirebase)

	out, err := svc.SignInWithOAuth(ctx, "forged")

	assert.Nil(t, out)
	assert.Equal(t, domainerrors.ErrOAuthTokenInvalid, err)
}

func TestSessionService_SignInWithOAuth_NotConfigured(t *testing.T) {
	svc := NewSessionService(SessionServiceParams{
		UserRepo:     mockRepo.NewMockUserRepository(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		Config:       testConfig(),
		Logger:       discardLogger(),
	})

	_, err := svc.SignInWithOAuth(context.Background(), "id-token")

	assert.Equal(t, domainerrors.ErrSignInUnavailable, err)
}

func TestSessionService_AdminLogin(t *testing.T) {
	t.Run("correct password", func(t *testing.T) {
		hasher := mockSvc.NewMockPasswordHasher(t)
		tokens := mockSvc.NewMockTokenService(t)
		svc := NewSessionService(SessionServiceParams{
			UserRepo:     mockRepo.NewMockUserRepository(t),
			TokenService: tokens,
			Hasher:       hasher,
			Config:       testConfig(),
			Logger:       discardLogger(),
		})

		hasher.EXPECT().Check("s3cret", "$2a$04$hash").Return(true)
		tokens.EXPECT().GenerateToken(entity.AdminPrincipalID, []string{"admin"}).Return("admin.jwt", nil)

		out, err := svc.AdminLogin(context.Background(), "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "admin.jwt", out.Token)
		assert.Nil(t, out.User)
		assert.True(t, out.Roles.Contains(entity.RoleAdmin))
	})

	t.Run("wrong password", func(t *testing.T) {
		hasher := mockSvc.NewMockPasswordHasher(t)
		tokens := mockSvc.NewMockTokenService(t)
		svc := NewSessionService(SessionServiceParams{
			UserRepo:     mockRepo.NewMockUserRepository(t),
			TokenService: tokens,
			Hasher:       hasher,
			Config:       testConfig(),
			Logger:       discardLogger(),
		})

		hasher.EXPECT().Check("guess", "$2a$04$hash").Return(false)

		_, err := svc.AdminLogin(context.Background(), "guess")

		assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
		tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
	})

	t.Run("no hash configured", func(t *testing.T) {
		cfg := testConfig()
		cfg.Admin.PasswordHash = ""
		svc := NewSessionService(SessionServiceParams{
			UserRepo:     mockRepo.NewMockUserRepository(t),
			TokenService: mockSvc.NewMockTokenService(t),
			Hasher:       mockSvc.NewMockPasswordHasher(t),
			Config:       cfg,
			Logger:       discardLogger(),
		})

		_, err := svc.AdminLogin(context.Background(), "anything")

		assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
	})
}
