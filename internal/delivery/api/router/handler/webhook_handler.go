package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/constants"
	"gallery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandler receives Stripe event deliveries.
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// WebhookHandlerParams holds dependencies for WebhookHandler
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

// webhookAck is the literal body Stripe expects; it is not wrapped in the envelope.
type webhookAck struct {
	Received bool `json:"received"`
}

// HandleStripe verifies and reconciles one delivery. The body must be read
// raw because the signature covers the exact bytes.
func (h *WebhookHandler) HandleStripe(c echo.Context) error {
	ctx := c.Request().Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, constants.MaxWebhookBodyBytes))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).WarnContext(ctx, "Failed to read webhook body", slog.Any("error", err))

		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable body"})
	}

	signature := c.Request().Header.Get(constants.HeaderStripeSignature)

	if err := h.webhookUC.Reconcile(ctx, payload, signature); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, webhookAck{Received: true})
}
