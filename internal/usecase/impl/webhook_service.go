package impl

import (
	"context"
	"log/slog"

	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/repository"
	"gallery/internal/domain/service"
	"gallery/internal/errors"
	"gallery/internal/usecase"

	"go.uber.org/fx"
)

type webhookService struct {
	gateway         service.PaymentGateway
	entitlementRepo repository.EntitlementRepository
	artworkRepo     repository.ArtworkRepository
	orderRepo       repository.OrderRepository
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	Gateway         service.PaymentGateway
	EntitlementRepo repository.EntitlementRepository
	ArtworkRepo     repository.ArtworkRepository
	OrderRepo       repository.OrderRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewWebhookService creates a new webhook reconciliation service.
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	return &webhookService{
		gateway:         params.Gateway,
		entitlementRepo: params.EntitlementRepo,
		artworkRepo:     params.ArtworkRepo,
		orderRepo:       params.OrderRepo,
		publisher:       params.Publisher,
		logger:          params.Logger,
	}
}

func (srv *webhookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reconcile verifies and applies one webhook delivery. Once the signature
// checks out it always returns nil; downstream failures are logged.
func (srv *webhookService) Reconcile(ctx context.Context, payload []byte, signature string) error {
	if len(payload) == 0 {
		srv.log(ctx).Warn("Webhook rejected: missing body")

		return domainerrors.ErrMissingPayload
	}

	event, err := srv.gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWebhookSignature) {
			srv.log(ctx).Warn("Webhook signature verification failed",
				slog.Bool("signature_present", signature != ""),
				slog.Any("error", err),
			)

			return domainerrors.ErrInvalidSignature
		}

		// Signed but undecodable; acknowledged so it is not redelivered.
		srv.log(ctx).Error("Failed to decode verified webhook event", slog.Any("error", err))

		return nil
	}

	log := srv.log(ctx).With(slog.String("event_id", event.ID), slog.String("event_type", event.RawType))

	switch event.Type {
	case service.PaymentEventCheckoutCompleted:
		return srv.handleCheckoutCompleted(ctx, log, event)
	case service.PaymentEventChargeRefunded:
		return srv.handleChargeRefunded(ctx, log, event)
	default:
		log.Debug("Ignoring webhook event")

		return nil
	}
}

func (srv *webhookService) handleCheckoutCompleted(ctx context.Context, log *slog.Logger, event *service.PaymentEvent) error {
	intent, err := entity.ParsePurchaseIntent(event.Metadata)
	if err != nil {
		if errors.Is(err, entity.ErrUnknownPurpose) {
			log.Debug("Checkout session has no reconcilable purpose",
				slog.String("checkout_session_id", event.CheckoutSessionID))
		} else {
			log.Error("Malformed purchase metadata",
				slog.String("checkout_session_id", event.CheckoutSessionID),
				slog.Any("error", err),
			)
		}

		return nil
	}

	switch intent := intent.(type) {
	case entity.PromptPurchaseIntent:
		return srv.completePromptPurchase(ctx, log, event, intent)
	case entity.PrintOrderIntent:
		return srv.completePrintOrder(ctx, log, event, intent)
	default:
		return nil
	}
}

func (srv *webhookService) completePromptPurchase(ctx context.Context, log *slog.Logger, event *service.PaymentEvent, intent entity.PromptPurchaseIntent) error {
	log = log.With(
		slog.String("checkout_session_id", event.CheckoutSessionID),
		slog.String("user_id", intent.UserID.String()),
		slog.String("artwork_id", intent.ArtworkID),
	)

	if intent.PriceAtCheckout != event.AmountTotal {
		log.Warn("Amount paid differs from price at checkout",
			slog.Int64("price_at_checkout", intent.PriceAtCheckout),
			slog.Int64("amount_total", event.AmountTotal),
		)
	}

	// Fast path for redeliveries; the unique index closes the race.
	if _, err := srv.entitlementRepo.FindByCheckoutSessionID(ctx, event.CheckoutSessionID); err == nil {
		log.Info("Checkout session already reconciled")

		return nil
	} else if !errors.Is(err, repository.ErrEntitlementNotFound) {
		log.Error("Failed to look up checkout session, acknowledging anyway", slog.Any("error", err))

		return nil
	}

	entitlement, err := srv.entitlementRepo.InsertCompleted(ctx, repository.NewEntitlement{
		UserID:            intent.UserID,
		ArtworkID:         intent.ArtworkID,
		CheckoutSessionID: event.CheckoutSessionID,
		PaymentIntentID:   event.PaymentIntentID,
		AmountPaid:        event.AmountTotal,
		PayerEmail:        event.PayerEmail,
	})
	switch {
	case errors.Is(err, repository.ErrDuplicateCheckoutSession):
		log.Info("Checkout session recorded by a concurrent delivery")

		return nil
	case errors.Is(err, repository.ErrAlreadyEntitled):
		// A concurrent delivery of this session can trip the per-user index first.
		if _, findErr := srv.entitlementRepo.FindByCheckoutSessionID(ctx, event.CheckoutSessionID); findErr == nil {
			log.Info("Checkout session recorded by a concurrent delivery")

			return nil
		}

		log.Warn("User already holds this prompt, payment needs a manual refund")

		return nil
	case err != nil:
		log.Error("Failed to record entitlement, acknowledging anyway", slog.Any("error", err))

		return nil
	}

	log.Info("Prompt unlocked",
		slog.String("entitlement_id", entitlement.ID.String()),
		slog.Int64("amount_paid", entitlement.AmountPaid),
	)

	srv.publishConfirmation(ctx, log, entitlement)

	return nil
}

// publishConfirmation never fails the webhook; the entitlement is already durable.
func (srv *webhookService) publishConfirmation(ctx context.Context, log *slog.Logger, entitlement *entity.Entitlement) {
	if entitlement.PayerEmail == nil || *entitlement.PayerEmail == "" {
		log.Info("No payer email, skipping confirmation")

		return
	}

	title := entitlement.ArtworkID
	artwork, err := srv.artworkRepo.FindByID(ctx, entitlement.ArtworkID)
	if err != nil {
		log.Warn("Failed to load artwork title for confirmation", slog.Any("error", err))
	} else {
		title = artwork.Title
	}

	err = srv.publisher.PublishPurchaseConfirmed(ctx, &service.PurchaseConfirmedEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		EntitlementID:     entitlement.ID.String(),
		CheckoutSessionID: entitlement.CheckoutSessionID,
		ArtworkID:         entitlement.ArtworkID,
		ArtworkTitle:      title,
		PayerEmail:        *entitlement.PayerEmail,
		AmountPaid:        entitlement.AmountPaid,
	})
	if err != nil {
		log.Error("Failed to publish purchase confirmation", slog.Any("error", err))
	}
}

func (srv *webhookService) completePrintOrder(ctx context.Context, log *slog.Logger, event *service.PaymentEvent, intent entity.PrintOrderIntent) error {
	payment := entity.OrderPayment{
		PaymentIntentID: event.PaymentIntentID,
		ShippingName:    event.ShippingName,
		ShippingAddress: event.ShippingAddress,
	}
	if event.PayerEmail != nil {
		payment.Email = *event.PayerEmail
	}

	rows, err := srv.orderRepo.MarkPaid(ctx, intent.OrderID, payment)
	if err != nil {
		log.Error("Failed to mark print order paid, acknowledging anyway",
			slog.String("checkout_session_id", event.CheckoutSessionID),
			slog.Int64("order_id", intent.OrderID),
			slog.Any("error", err),
		)

		return nil
	}

	if rows == 0 {
		log.Info("Print order not pending, nothing to update", slog.Int64("order_id", intent.OrderID))

		return nil
	}

	log.Info("Print order paid", slog.Int64("order_id", intent.OrderID))

	return nil
}

func (srv *webhookService) handleChargeRefunded(ctx context.Context, log *slog.Logger, event *service.PaymentEvent) error {
	if event.PaymentIntentID == nil {
		log.Warn("Refunded charge has no payment intent")

		return nil
	}

	rows, err := srv.entitlementRepo.MarkRefunded(ctx, *event.PaymentIntentID)
	if err != nil {
		log.Error("Failed to mark entitlement refunded, acknowledging anyway",
			slog.String("payment_intent_id", *event.PaymentIntentID),
			slog.Any("error", err),
		)

		return nil
	}

	log.Info("Charge refunded",
		slog.String("payment_intent_id", *event.PaymentIntentID),
		slog.Int64("entitlements_refunded", rows),
	)

	return nil
}
