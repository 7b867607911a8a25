package service

import (
	"context"
)

// PurchaseConfirmedEvent asks the mailer to send an unlock confirmation.
type PurchaseConfirmedEvent struct {
	RequestID         string `json:"request_id,omitempty"` // For distributed tracing
	EntitlementID     string `json:"entitlement_id"`
	CheckoutSessionID string `json:"checkout_session_id"`
	ArtworkID         string `json:"artwork_id"`
	ArtworkTitle      string `json:"artwork_title"`
	PayerEmail        string `json:"payer_email"`
	AmountPaid        int64  `json:"amount_paid"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishPurchaseConfirmed(ctx context.Context, event *PurchaseConfirmedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
