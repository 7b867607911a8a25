package usecase

import (
	"context"

	"gallery/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseListing is the admin purchase table plus its completed-revenue summary.
type PurchaseListing struct {
	Purchases []*entity.PurchaseRecord
	Summary   *entity.PurchaseSummary
}

// AdminUsecase is the operator's purchase and pricing surface.
type AdminUsecase interface {
	ListPurchases(ctx context.Context, filter entity.PurchaseFilter) (*PurchaseListing, error)

	// RefundPurchase refunds a completed purchase through the payment
	// provider, then marks it refunded without waiting for the webhook.
	RefundPurchase(ctx context.Context, entitlementID uuid.UUID) error

	// SetPromptPrice sets an artwork's price override, or clears it when price is nil.
	SetPromptPrice(ctx context.Context, artworkID string, price *int64) error
}
