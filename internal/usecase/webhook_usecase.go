package usecase

import "context"

// WebhookUsecase reconciles payment provider notifications into entitlements and orders.
type WebhookUsecase interface {
	// Reconcile verifies and applies one webhook delivery.
	// A nil error means the delivery must be acknowledged; only signature
	// failures and storage errors are returned.
	Reconcile(ctx context.Context, payload []byte, signature string) error
}
