package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementStatus is the lifecycle state of a prompt purchase.
type EntitlementStatus string

const (
	EntitlementStatusPending   EntitlementStatus = "pending"
	EntitlementStatusCompleted EntitlementStatus = "completed"
	EntitlementStatusRefunded  EntitlementStatus = "refunded"
)

// IsValid checks if the status is one of the known values.
func (s EntitlementStatus) IsValid() bool {
	switch s {
	case EntitlementStatusPending, EntitlementStatusCompleted, EntitlementStatusRefunded:
		return true
	default:
		return false
	}
}

// Entitlement is one collector's paid right to one artwork's premium payload.
// Rows are only written once payment is confirmed, so the reconciler never
// creates pending rows; the status exists for rows imported from elsewhere.
type Entitlement struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ArtworkID         string
	CheckoutSessionID string
	PaymentIntentID   *string
	AmountPaid        int64
	Status            EntitlementStatus
	PayerEmail        *string
	CreatedAt         time.Time
	RefundedAt        *time.Time
}

// IsCompleted reports whether the entitlement currently grants access.
func (e *Entitlement) IsCompleted() bool {
	return e.Status == EntitlementStatusCompleted
}

// PurchaseRecord is an entitlement joined with the names the admin list shows.
type PurchaseRecord struct {
	Entitlement
	UserName     string
	UserEmail    string
	ArtworkTitle string
	ArtworkSrc   string
}

// PurchaseFilter narrows the admin purchase listing. Zero values mean "any".
type PurchaseFilter struct {
	Status EntitlementStatus
	From   *time.Time
	To     *time.Time
	Limit  int
}

// PurchaseSummary aggregates completed purchases only.
type PurchaseSummary struct {
	TotalRevenue int64
	TotalCount   int64
}
