// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PurchaseResult is either an existing unlock or a checkout to redirect to.
type PurchaseResult struct {
	AlreadyOwned bool
	CheckoutURL  string
}

// PurchaseUsecase opens prompt unlock checkouts for collectors.
type PurchaseUsecase interface {
	// InitiatePurchase validates the request and opens a checkout session.
	// A uuid.Nil user is anonymous and gets a resumable sign-in error.
	InitiatePurchase(ctx context.Context, userID uuid.UUID, artworkID string) (*PurchaseResult, error)

	// ListPurchased returns the ids of artworks the user has unlocked, sorted.
	// Anonymous callers get an empty list.
	ListPurchased(ctx context.Context, userID uuid.UUID) ([]string, error)
}
