package main

import (
	"context"
	"log/slog"
	"os"

	"gallery/config"
	"gallery/internal/delivery"
	"gallery/internal/delivery/api"
	"gallery/internal/delivery/api/middleware"
	"gallery/internal/delivery/api/router/handler"
	"gallery/internal/domain/constants"
	"gallery/internal/domain/pricing"
	"gallery/internal/domain/service"
	"gallery/internal/infra/auth"
	"gallery/internal/infra/auth/firebase"
	"gallery/internal/infra/auth/google"
	logs "gallery/internal/infra/log"
	"gallery/internal/infra/payment/stripe"
	"gallery/internal/infra/persistence/postgres"
	"gallery/internal/infra/pubsub"
	"gallery/internal/infra/ratelimit"
	"gallery/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		ratelimit.NewRateLimiter,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewArtworkRepository,
			postgres.NewEntitlementRepository,
			postgres.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			stripe.NewGateway,
			newPriceResolver,
			newIdentityVerifier,
		),
	)
}

// newPriceResolver exposes the configured price bounds; config.New has validated them.
func newPriceResolver(cfg *config.Config) *pricing.Resolver {
	return pricing.NewResolver(cfg.Pricing.Default, cfg.Pricing.Min, cfg.Pricing.Max)
}

// newIdentityVerifier selects the OAuth verifier. It returns nil when sign-in
// is not configured, which keeps the callback route unmounted.
func newIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Identity == nil || cfg.Identity.Provider == "" {
		return nil, nil
	}

	switch cfg.Identity.Provider {
	case constants.IdentityProviderFirebase:
		return firebase.NewVerifier(ctx, cfg, logger)
	default:
		return google.NewVerifier(cfg, logger)
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPurchaseService,
			impl.NewWebhookService,
			impl.NewArtworkService,
			impl.NewAdminService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			newRateLimitMiddleware,
		),
	)
}

func newRateLimitMiddleware(limiter service.RateLimiter, cfg *config.Config, logger *slog.Logger) *middleware.RateLimitMiddleware {
	return middleware.NewRateLimitMiddleware(limiter, cfg.RateLimit.Window, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPurchaseHandler,
			handler.NewWebhookHandler,
			handler.NewArtworkHandler,
			handler.NewAdminHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
