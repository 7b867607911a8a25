package impl

import (
	"context"
	"log/slog"
	"strings"

	"gallery/config"
	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/repository"
	"gallery/internal/domain/service"
	"gallery/internal/errors"
	"gallery/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo     repository.UserRepository
	verifier     service.IdentityVerifier
	tokenService service.TokenService
	hasher       service.PasswordHasher
	adminHash    string
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Verifier     service.IdentityVerifier `optional:"true"`
	TokenService service.TokenService
	Hasher       service.PasswordHasher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		verifier:     params.Verifier,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
		adminHash:    params.Config.Admin.PasswordHash,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignInWithOAuth verifies a provider ID token and upserts the collector.
func (srv *sessionService) SignInWithOAuth(ctx context.Context, idToken string) (*usecase.SessionOutput, error) {
	if srv.verifier == nil {
		return nil, domainerrors.ErrSignInUnavailable
	}

	identity, err := srv.verifier.VerifyIDToken(ctx, strings.TrimSpace(idToken))
	if err != nil {
		srv.log(ctx).Warn("ID token rejected",
			slog.String("provider", string(srv.verifier.Provider())),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	name := identity.Name
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}

	user, err := srv.userRepo.UpsertByProvider(ctx, &entity.User{
		Name:            name,
		Email:           identity.Email,
		Provider:        identity.Provider,
		ProviderSubject: identity.Subject,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	roles := entity.Roles{entity.RoleCollector}
	token, err := srv.tokenService.GenerateToken(user.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Collector signed in",
		slog.String("user_id", user.ID.String()),
		slog.String("provider", string(user.Provider)),
	)

	return &usecase.SessionOutput{Token: token, User: user, Roles: roles}, nil
}

// AdminLogin checks the operator password against the configured bcrypt hash.
func (srv *sessionService) AdminLogin(ctx context.Context, password string) (*usecase.SessionOutput, error) {
	if srv.adminHash == "" || password == "" || !srv.hasher.Check(password, srv.adminHash) {
		srv.log(ctx).Warn("Admin login failed")

		return nil, domainerrors.ErrInvalidCredentials
	}

	roles := entity.Roles{entity.RoleAdmin}
	token, err := srv.tokenService.GenerateToken(entity.AdminPrincipalID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	srv.log(ctx).Info("Admin signed in")

	return &usecase.SessionOutput{Token: token, Roles: roles}, nil
}
