// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"gallery/config"
	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/pricing"
	"gallery/internal/domain/repository"
	"gallery/internal/domain/service"
	"gallery/internal/errors"
	"gallery/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	promptProductPrefix      = "Prompt Unlock: "
	promptProductDescription = "Full prompt text, technique descriptions, refinement notes, and Playground access"
)

type purchaseService struct {
	artworkRepo     repository.ArtworkRepository
	entitlementRepo repository.EntitlementRepository
	gateway         service.PaymentGateway
	prices          *pricing.Resolver
	siteURL         string
	logger          *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	ArtworkRepo     repository.ArtworkRepository
	EntitlementRepo repository.EntitlementRepository
	Gateway         service.PaymentGateway
	Prices          *pricing.Resolver
	Config          *config.Config
	Logger          *slog.Logger
}

// NewPurchaseService creates a new purchase service instance.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		artworkRepo:     params.ArtworkRepo,
		entitlementRepo: params.EntitlementRepo,
		gateway:         params.Gateway,
		prices:          params.Prices,
		siteURL:         strings.TrimRight(params.Config.Stripe.SiteURL, "/"),
		logger:          params.Logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitiatePurchase validates the request and opens a checkout session.
func (srv *purchaseService) InitiatePurchase(ctx context.Context, userID uuid.UUID, artworkID string) (*usecase.PurchaseResult, error) {
	// 1. Only signed-in collectors can buy
	if userID == uuid.Nil {
		return nil, domainerrors.NewSignInRequiredError(artworkID)
	}

	// 2. The artwork must exist and have something to sell
	artwork, err := srv.artworkRepo.FindByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, domainerrors.ErrArtworkNotFound
		}

		return nil, errors.Wrap(err, "failed to find artwork")
	}
	if !artwork.HasPremiumContent() {
		return nil, domainerrors.ErrNoPremiumContent
	}

	// 3. Never charge twice for the same unlock
	owned, err := srv.entitlementRepo.HasCompleted(ctx, userID, artwork.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check entitlement")
	}
	if owned {
		srv.log(ctx).Info("Prompt already unlocked",
			slog.String("user_id", userID.String()),
			slog.String("artwork_id", artwork.ID),
		)

		return &usecase.PurchaseResult{AlreadyOwned: true}, nil
	}

	// 4. Price and open the checkout
	price := srv.prices.Resolve(artwork.PromptPrice)
	intent := entity.PromptPurchaseIntent{
		UserID:          userID,
		ArtworkID:       artwork.ID,
		PriceAtCheckout: price,
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CheckoutRequest{
		ProductName:        promptProductPrefix + artwork.Title,
		ProductDescription: promptProductDescription,
		UnitAmount:         price,
		Metadata:           intent.Metadata(),
		SuccessURL:         srv.successURL(artwork.ID),
		CancelURL:          srv.siteURL + "/gallery",
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session",
			slog.String("artwork_id", artwork.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentSetupFailed
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("user_id", userID.String()),
		slog.String("artwork_id", artwork.ID),
		slog.String("checkout_session_id", session.ID),
		slog.Int64("price", price),
	)

	return &usecase.PurchaseResult{CheckoutURL: session.URL}, nil
}

// successURL keeps the provider's {CHECKOUT_SESSION_ID} placeholder unescaped.
func (srv *purchaseService) successURL(artworkID string) string {
	return fmt.Sprintf("%s/gallery?prompt_unlocked=%s&session_id={CHECKOUT_SESSION_ID}",
		srv.siteURL, url.QueryEscape(artworkID))
}

// ListPurchased returns the ids of artworks the user has unlocked.
func (srv *purchaseService) ListPurchased(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if userID == uuid.Nil {
		return []string{}, nil
	}

	owned, err := srv.entitlementRepo.ListCompletedArtworkIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entitlements")
	}

	ids := make([]string, 0, len(owned))
	for id := range owned {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}
