package impl

import (
	"context"
	"log/slog"

	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/constants"
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

type adminService struct {
	entitlementRepo repository.EntitlementRepository
	artworkRepo     repository.ArtworkRepository
	gateway         service.PaymentGateway
	prices          *pricing.Resolver
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	EntitlementRepo repository.EntitlementRepository
	ArtworkRepo     repository.ArtworkRepository
	Gateway         service.PaymentGateway
	Prices          *pricing.Resolver
	Logger          *slog.Logger
}

// NewAdminService creates the operator service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		entitlementRepo: params.EntitlementRepo,
		artworkRepo:     params.ArtworkRepo,
		gateway:         params.Gateway,
		prices:          params.Prices,
		logger:          params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPurchases returns the newest purchases and the completed-revenue summary.
func (srv *adminService) ListPurchases(ctx context.Context, filter entity.PurchaseFilter) (*usecase.PurchaseListing, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(filter.Status))
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from is after to")
	}
	filter.Limit = constants.AdminPurchaseListLimit

	purchases, err := srv.entitlementRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	summary, err := srv.entitlementRepo.Summary(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize purchases")
	}

	return &usecase.PurchaseListing{Purchases: purchases, Summary: summary}, nil
}

// RefundPurchase refunds a completed purchase and marks it refunded.
func (srv *adminService) RefundPurchase(ctx context.Context, entitlementID uuid.UUID) error {
	purchase, err := srv.entitlementRepo.FindByID(ctx, entitlementID)
	if err != nil {
		if errors.Is(err, repository.ErrEntitlementNotFound) {
			return domainerrors.ErrPurchaseNotFound
		}

		return errors.Wrap(err, "failed to find purchase")
	}

	if !purchase.IsCompleted() {
		return domainerrors.ErrPurchaseNotRefundable
	}
	if purchase.PaymentIntentID == nil || *purchase.PaymentIntentID == "" {
		return domainerrors.ErrMissingPaymentIntent
	}

	log := srv.log(ctx).With(
		slog.String("entitlement_id", entitlementID.String()),
		slog.String("payment_intent_id", *purchase.PaymentIntentID),
	)

	if err := srv.gateway.RefundPayment(ctx, *purchase.PaymentIntentID); err != nil {
		log.Error("Stripe refund failed", slog.Any("error", err))

		return domainerrors.ErrRefundFailed
	}

	// The charge.refunded webhook will find nothing left to update.
	if _, err := srv.entitlementRepo.MarkRefundedByID(ctx, entitlementID); err != nil {
		return errors.Wrap(err, "failed to mark purchase refunded")
	}

	log.Info("Purchase refunded", slog.Int64("amount_paid", purchase.AmountPaid))

	return nil
}

// SetPromptPrice sets or clears an artwork's price override.
func (srv *adminService) SetPromptPrice(ctx context.Context, artworkID string, price *int64) error {
	if price != nil && !srv.prices.InRange(*price) {
		return domainerrors.ErrValidationFailed.WithDetails("price outside the allowed range")
	}

	if err := srv.artworkRepo.UpdatePromptPrice(ctx, artworkID, price); err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return domainerrors.ErrArtworkNotFound
		}

		return errors.Wrap(err, "failed to update prompt price")
	}

	attrs := []any{slog.String("artwork_id", artworkID)}
	if price != nil {
		attrs = append(attrs, slog.String("price", pricing.Format(*price)))
	}
	srv.log(ctx).Info("Prompt price updated", attrs...)

	return nil
}
