// Package stripe implements the payment gateway on top of the Stripe API.
package stripe

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"gallery/config"
	"gallery/internal/domain/constants"
	"gallery/internal/domain/service"
	"gallery/internal/errors"

	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

type gateway struct {
	api           *client.API
	webhookSecret string
	currency      string
}

// NewGateway builds the Stripe-backed payment gateway. An empty stripe.apiUrl
// talks to the live API.
func NewGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	backendCfg := &stripeapi.BackendConfig{
		LeveledLogger: &leveledLogger{logger: logger.With(slog.String("component", "stripe"))},
	}
	if cfg.Stripe.APIURL != "" {
		backendCfg.URL = stripeapi.String(cfg.Stripe.APIURL)
	}

	backends := &stripeapi.Backends{
		API: stripeapi.GetBackendWithConfig(stripeapi.APIBackend, backendCfg),
	}

	return newGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.Stripe.Currency, backends)
}

func newGateway(secretKey, webhookSecret, currency string, backends *stripeapi.Backends) *gateway {
	return &gateway{
		api:           client.New(secretKey, backends),
		webhookSecret: webhookSecret,
		currency:      strings.ToLower(currency),
	}
}

func (g *gateway) CreateCheckoutSession(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutSession, error) {
	params := &stripeapi.CheckoutSessionParams{
		Mode:               stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripeapi.StringSlice([]string{"card"}),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency: stripeapi.String(g.currency),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripeapi.String(req.ProductName),
						Description: stripeapi.String(req.ProductDescription),
					},
					UnitAmount: stripeapi.Int64(req.UnitAmount),
				},
				Quantity: stripeapi.Int64(1),
			},
		},
		// Copied onto the payment intent so refunds and disputes carry the same keys.
		PaymentIntentData: &stripeapi.CheckoutSessionPaymentIntentDataParams{
			Metadata: req.Metadata,
		},
		Metadata:   req.Metadata,
		SuccessURL: stripeapi.String(req.SuccessURL),
		CancelURL:  stripeapi.String(req.CancelURL),
	}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe create checkout session")
	}
	if sess.URL == "" {
		return nil, errors.Errorf("stripe checkout session %s has no url", sess.ID)
	}

	return &service.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (g *gateway) RefundPayment(ctx context.Context, paymentIntentID string) error {
	params := &stripeapi.RefundParams{
		PaymentIntent: stripeapi.String(paymentIntentID),
	}
	params.Context = ctx

	if _, err := g.api.Refunds.New(params); err != nil {
		return errors.Wrapf(err, "stripe refund payment intent %s", paymentIntentID)
	}

	return nil
}

func (g *gateway) ParseWebhookEvent(payload []byte, signature string) (*service.PaymentEvent, error) {
	if len(payload) == 0 {
		return nil, errors.Wrap(service.ErrInvalidWebhookSignature, "empty payload")
	}
	if signature == "" {
		return nil, errors.Wrapf(service.ErrInvalidWebhookSignature, "missing %s header", constants.HeaderStripeSignature)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidWebhookSignature, err.Error())
	}

	out := &service.PaymentEvent{
		ID:      event.ID,
		RawType: string(event.Type),
		Type:    service.PaymentEventIgnored,
	}

	switch string(event.Type) {
	case constants.StripeEventCheckoutCompleted:
		if err := decodeCheckoutCompleted(event.Data.Raw, out); err != nil {
			return nil, err
		}
	case constants.StripeEventChargeRefunded:
		if err := decodeChargeRefunded(event.Data.Raw, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// shippingEnvelope picks the shipping block out of the raw session. The
// address is kept as the provider's JSON so the print shop can render it.
type shippingEnvelope struct {
	ShippingDetails *struct {
		Name    string          `json:"name"`
		Address json.RawMessage `json:"address"`
	} `json:"shipping_details"`
}

func decodeCheckoutCompleted(raw json.RawMessage, out *service.PaymentEvent) error {
	var sess stripeapi.CheckoutSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return errors.Wrap(err, "decode checkout session")
	}

	out.Type = service.PaymentEventCheckoutCompleted
	out.CheckoutSessionID = sess.ID
	out.AmountTotal = sess.AmountTotal
	out.Metadata = sess.Metadata
	if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
		out.PaymentIntentID = stripeapi.String(sess.PaymentIntent.ID)
	}

	switch {
	case sess.CustomerDetails != nil && sess.CustomerDetails.Email != "":
		out.PayerEmail = stripeapi.String(sess.CustomerDetails.Email)
	case sess.CustomerEmail != "":
		out.PayerEmail = stripeapi.String(sess.CustomerEmail)
	}

	var shipping shippingEnvelope
	if err := json.Unmarshal(raw, &shipping); err != nil {
		return errors.Wrap(err, "decode shipping details")
	}
	if details := shipping.ShippingDetails; details != nil {
		if details.Name != "" {
			out.ShippingName = stripeapi.String(details.Name)
		}
		if len(details.Address) > 0 && string(details.Address) != "null" {
			out.ShippingAddress = stripeapi.String(string(details.Address))
		}
	}
	if out.ShippingName == nil && sess.CustomerDetails != nil && sess.CustomerDetails.Name != "" {
		out.ShippingName = stripeapi.String(sess.CustomerDetails.Name)
	}

	return nil
}

func decodeChargeRefunded(raw json.RawMessage, out *service.PaymentEvent) error {
	var charge stripeapi.Charge
	if err := json.Unmarshal(raw, &charge); err != nil {
		return errors.Wrap(err, "decode charge")
	}

	out.Type = service.PaymentEventChargeRefunded
	if charge.PaymentIntent != nil && charge.PaymentIntent.ID != "" {
		out.PaymentIntentID = stripeapi.String(charge.PaymentIntent.ID)
	}

	return nil
}
