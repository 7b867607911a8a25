package service

import (
	"context"

	"gallery/internal/errors"
)

// ErrInvalidWebhookSignature is returned by ParseWebhookEvent for any payload
// that does not verify against the configured signing secret.
var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

// CheckoutRequest describes a single-item hosted checkout.
type CheckoutRequest struct {
	ProductName        string
	ProductDescription string
	UnitAmount         int64
	// Metadata is attached to both the session and its payment intent.
	Metadata   map[string]string
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the provider's answer to a checkout request.
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentEventType is the subset of provider events the reconciler understands.
type PaymentEventType string

const (
	PaymentEventCheckoutCompleted PaymentEventType = "checkout_completed"
	PaymentEventChargeRefunded    PaymentEventType = "charge_refunded"
	PaymentEventIgnored           PaymentEventType = "ignored"
)

// PaymentEvent is a verified webhook event reduced to the fields reconciliation reads.
type PaymentEvent struct {
	ID      string
	Type    PaymentEventType
	RawType string

	// Checkout completed.
	CheckoutSessionID string
	AmountTotal       int64
	PayerEmail        *string
	Metadata          map[string]string
	ShippingName      *string
	ShippingAddress   *string // JSON

	// Set on both checkout completed and charge refunded.
	PaymentIntentID *string
}

// PaymentGateway talks to the hosted payment provider.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)

	// RefundPayment refunds the full amount captured by the payment intent.
	RefundPayment(ctx context.Context, paymentIntentID string) error

	// ParseWebhookEvent verifies the signature header over the raw body and
	// decodes the event. Verification failures wrap ErrInvalidWebhookSignature.
	ParseWebhookEvent(payload []byte, signature string) (*PaymentEvent, error)
}
