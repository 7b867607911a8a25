package repository

import (
	"context"

	"gallery/internal/domain/entity"
	"gallery/internal/errors"

	"github.com/google/uuid"
)

// Outcomes of entitlement persistence the reconciler and admin flows branch on.
var (
	// ErrEntitlementNotFound is returned when no entitlement matches the lookup.
	ErrEntitlementNotFound = errors.New("entitlement not found")
	// ErrDuplicateCheckoutSession means a row for this checkout session already exists.
	ErrDuplicateCheckoutSession = errors.New("checkout session already recorded")
	// ErrAlreadyEntitled means the user already holds a completed entitlement for the artwork.
	ErrAlreadyEntitled = errors.New("user already entitled to artwork")
)

// NewEntitlement carries the fields the reconciler knows when a checkout completes.
type NewEntitlement struct {
	UserID            uuid.UUID
	ArtworkID         string
	CheckoutSessionID string
	PaymentIntentID   *string
	AmountPaid        int64
	PayerEmail        *string
}

// EntitlementRepository is the durable store of paid prompt unlocks.
// Every read goes to the primary so a webhook write is visible immediately.
type EntitlementRepository interface {
	// HasCompleted reports whether the user holds a completed entitlement for the artwork.
	HasCompleted(ctx context.Context, userID uuid.UUID, artworkID string) (bool, error)

	// ListCompletedArtworkIDs returns the set of artworks the user has unlocked.
	ListCompletedArtworkIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error)

	// FindByCheckoutSessionID returns ErrEntitlementNotFound when the session is unseen.
	FindByCheckoutSessionID(ctx context.Context, sessionID string) (*entity.Entitlement, error)

	// InsertCompleted writes a completed entitlement. It returns
	// ErrDuplicateCheckoutSession or ErrAlreadyEntitled when a unique index rejects the row.
	InsertCompleted(ctx context.Context, in NewEntitlement) (*entity.Entitlement, error)

	// MarkRefunded flips completed rows paid through the payment intent to refunded.
	// Zero rows updated is not an error.
	MarkRefunded(ctx context.Context, paymentIntentID string) (int64, error)

	// FindByID returns ErrEntitlementNotFound when the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entitlement, error)

	// MarkRefundedByID flips a single completed row to refunded.
	MarkRefundedByID(ctx context.Context, id uuid.UUID) (int64, error)

	// List returns purchases newest first, joined with user and artwork names.
	List(ctx context.Context, filter entity.PurchaseFilter) ([]*entity.PurchaseRecord, error)

	// Summary aggregates completed purchases inside the filter's date range.
	Summary(ctx context.Context, filter entity.PurchaseFilter) (*entity.PurchaseSummary, error)
}
