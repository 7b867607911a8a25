// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"gallery/config"
	"gallery/internal/delivery/api/middleware"
	"gallery/internal/delivery/api/router/handler"
	"gallery/internal/domain/entity"
	"gallery/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Rate limit scopes, used as key prefixes in the shared limiter.
const (
	scopePurchase   = "purchase"
	scopeSignIn     = "signin"
	scopeAdminLogin = "admin-login"
)

type RouterParams struct {
	fx.In

	PurchaseHandler     *handler.PurchaseHandler
	WebhookHandler      *handler.WebhookHandler
	ArtworkHandler      *handler.ArtworkHandler
	AdminHandler        *handler.AdminHandler
	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	// IdentityVerifier is absent when sign-in is not configured.
	IdentityVerifier service.IdentityVerifier `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	purchaseHandler *handler.PurchaseHandler
	webhookHandler  *handler.WebhookHandler
	artworkHandler  *handler.ArtworkHandler
	adminHandler    *handler.AdminHandler
	authHandler     *handler.AuthHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimit       *middleware.RateLimitMiddleware
	signInEnabled   bool
	config          *config.Config
	logger          *slog.Logger
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		purchaseHandler: params.PurchaseHandler,
		webhookHandler:  params.WebhookHandler,
		artworkHandler:  params.ArtworkHandler,
		adminHandler:    params.AdminHandler,
		authHandler:     params.AuthHandler,
		authMiddleware:  params.AuthMiddleware,
		rateLimit:       params.RateLimitMiddleware,
		signInEnabled:   params.IdentityVerifier != nil,
		config:          params.Config,
		logger:          params.Logger,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	limits := r.config.RateLimit

	e.GET("/health", handler.HealthCheck)

	// Stripe signs the raw body, so this route sits outside every auth group.
	e.POST("/webhooks/stripe", r.webhookHandler.HandleStripe)

	authGroup := e.Group("/auth")
	if r.signInEnabled {
		authGroup.POST("/oauth/callback", r.authHandler.OAuthCallback,
			r.rateLimit.Limit(scopeSignIn, limits.SignInPerIP))
	} else {
		r.logger.Warn("Identity provider not configured, OAuth sign-in route disabled")
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.OptionalAuth)

	artworksGroup := apiV1.Group("/artworks")
	{
		artworksGroup.GET("", r.artworkHandler.ListArtworks)
		artworksGroup.GET("/:id", r.artworkHandler.GetArtwork)
	}

	// Anonymous purchase attempts get a resumable 401 from the use case.
	promptsGroup := apiV1.Group("/prompts")
	{
		promptsGroup.POST("/purchase", r.purchaseHandler.PurchasePrompt,
			r.rateLimit.Limit(scopePurchase, limits.PurchasePerIP))
		promptsGroup.GET("/purchased", r.purchaseHandler.ListPurchased)
	}

	e.POST("/admin/login", r.authHandler.AdminLogin,
		r.rateLimit.Limit(scopeAdminLogin, limits.AdminLoginPerIP))

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/prompt-purchases", r.adminHandler.ListPurchases)
		adminGroup.POST("/prompt-purchases/:id/refund", r.adminHandler.RefundPurchase)
		adminGroup.PUT("/artworks/:id/prompt-price", r.adminHandler.SetPromptPrice)
	}
}
