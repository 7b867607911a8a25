package stripe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"gallery/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway(t *testing.T, handler http.HandlerFunc) *gateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backends := &stripeapi.Backends{
		API: stripeapi.GetBackendWithConfig(stripeapi.APIBackend, &stripeapi.BackendConfig{
			URL:               stripeapi.String(server.URL),
			MaxNetworkRetries: stripeapi.Int64(0),
			LeveledLogger:     &leveledLogger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
		}),
	}

	return newGateway("sk_test_123", testWebhookSecret, "USD", backends)
}

func signedPayload(t *testing.T, body string) ([]byte, string) {
	t.Helper()

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(body),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	return signed.Payload, signed.Header
}

func TestGateway_CreateCheckoutSession(t *testing.T) {
	var form url.Values
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`)
	})

	sess, err := gw.CreateCheckoutSession(context.Background(), &service.CheckoutRequest{
		ProductName:        "Prompt Unlock: Neon Koi",
		ProductDescription: "Full prompt text",
		UnitAmount:         399,
		Metadata:           map[string]string{"type": "prompt_purchase", "artwork_id": "neon-koi"},
		SuccessURL:         "https://gallery.example/gallery?prompt_unlocked=neon-koi&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          "https://gallery.example/gallery",
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", sess.URL)

	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "399", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Prompt Unlock: Neon Koi", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "neon-koi", form.Get("metadata[artwork_id]"))
	assert.Equal(t, "prompt_purchase", form.Get("payment_intent_data[metadata][type]"))
	assert.Contains(t, form.Get("success_url"), "{CHECKOUT_SESSION_ID}")
}

func TestGateway_CreateCheckoutSession_ProviderError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"type":"invalid_request_error","message":"Invalid currency"}}`)
	})

	sess, err := gw.CreateCheckoutSession(context.Background(), &service.CheckoutRequest{ProductName: "x", UnitAmount: 399})

	assert.Nil(t, sess)
	assert.Error(t, err)
}

func TestGateway_RefundPayment(t *testing.T) {
	var paymentIntent string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/refunds", r.URL.Path)
		require.NoError(t, r.ParseForm())
		paymentIntent = r.PostForm.Get("payment_intent")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"re_1","object":"refund","status":"succeeded"}`)
	})

	require.NoError(t, gw.RefundPayment(context.Background(), "pi_123"))
	assert.Equal(t, "pi_123", paymentIntent)
}

func TestGateway_ParseWebhookEvent_CheckoutCompleted(t *testing.T) {
	gw := newGateway("sk_test_123", testWebhookSecret, "usd", nil)
	payload, header := signedPayload(t, `{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_test_1",
			"object": "checkout.session",
			"amount_total": 399,
			"payment_intent": "pi_123",
			"customer_details": {"email": "ada@example.com"},
			"metadata": {"type": "prompt_purchase", "user_id": "u", "artwork_id": "neon-koi", "price_at_checkout": "399"},
			"shipping_details": {"name": "Ada", "address": {"city": "London"}}
		}}
	}`)

	event, err := gw.ParseWebhookEvent(payload, header)

	require.NoError(t, err)
	assert.Equal(t, service.PaymentEventCheckoutCompleted, event.Type)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "cs_test_1", event.CheckoutSessionID)
	assert.Equal(t, int64(399), event.AmountTotal)
	require.NotNil(t, event.PaymentIntentID)
	assert.Equal(t, "pi_123", *event.PaymentIntentID)
	require.NotNil(t, event.PayerEmail)
	assert.Equal(t, "ada@example.com", *event.PayerEmail)
	assert.Equal(t, "neon-koi", event.Metadata["artwork_id"])
	require.NotNil(t, event.ShippingName)
	assert.Equal(t, "Ada", *event.ShippingName)
	require.NotNil(t, event.ShippingAddress)
	assert.JSONEq(t, `{"city":"London"}`, *event.ShippingAddress)
}

func TestGateway_ParseWebhookEvent_ShippingNameFallsBackToCustomer(t *testing.T) {
	gw := newGateway("sk_test_123", testWebhookSecret, "usd", nil)
	payload, header := signedPayload(t, `{
		"id": "evt_4",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_test_4",
			"object": "checkout.session",
			"amount_total": 4500,
			"customer_details": {"email": "grace@example.com", "name": "Grace"},
			"metadata": {"orderId": "12"}
		}}
	}`)

	event, err := gw.ParseWebhookEvent(payload, header)

	require.NoError(t, err)
	require.NotNil(t, event.ShippingName)
	assert.Equal(t, "Grace", *event.ShippingName)
	assert.Nil(t, event.ShippingAddress)
	assert.Nil(t, event.PaymentIntentID)
}

func TestGateway_ParseWebhookEvent_ChargeRefunded(t *testing.T) {
	gw := newGateway("sk_test_123", testWebhookSecret, "usd", nil)
	payload, header := signedPayload(t, `{
		"id": "evt_2",
		"object": "event",
		"type": "charge.refunded",
		"data": {"object": {"id": "ch_1", "object": "charge", "payment_intent": "pi_123"}}
	}`)

	event, err := gw.ParseWebhookEvent(payload, header)

	require.NoError(t, err)
	assert.Equal(t, service.PaymentEventChargeRefunded, event.Type)
	require.NotNil(t, event.PaymentIntentID)
	assert.Equal(t, "pi_123", *event.PaymentIntentID)
}

func TestGateway_ParseWebhookEvent_IgnoresOtherTypes(t *testing.T) {
	gw := newGateway("sk_test_123", testWebhookSecret, "usd", nil)
	payload, header := signedPayload(t, `{"id":"evt_3","object":"event","type":"customer.created","data":{"object":{"id":"cus_1"}}}`)

	event, err := gw.ParseWebhookEvent(payload, header)

	require.NoError(t, err)
	assert.Equal(t, service.PaymentEventIgnored, event.Type)
	assert.Equal(t, "customer.created", event.RawType)
}

func TestGateway_ParseWebhookEvent_RejectsBadSignatures(t *testing.T) {
	gw := newGateway("sk_test_123", testWebhookSecret, "usd", nil)
	body := `{"id":"evt_1","object":"event","type":"charge.refunded","data":{"object":{}}}`
	payload, header := signedPayload(t, body)

	forged := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(body),
		Secret:    "whsec_someone_else",
		Timestamp: time.Now(),
	})

	tests := []struct {
		name      string
		payload   []byte
		signature string
	}{
		{name: "empty payload", payload: nil, signature: header},
		{name: "missing header", payload: payload, signature: ""},
		{name: "wrong secret", payload: payload, signature: forged.Header},
		{name: "tampered body", payload: []byte(body + " "), signature: header},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := gw.ParseWebhookEvent(tt.payload, tt.signature)
			assert.Nil(t, event)
			assert.True(t, errors.Is(err, service.ErrInvalidWebhookSignature))
		})
	}
}
