package pubsub

import (
	"context"
	"log/slog"

	"gallery/config"
	"gallery/internal/domain/constants"
	"gallery/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured, so purchases
// still complete without a mailer.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPurchaseConfirmed(ctx context.Context, event *service.PurchaseConfirmedEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Confirmation mail disabled, skipping",
		slog.String("entitlement_id", event.EntitlementID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher named by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, confirmation emails are disabled")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	logger.Info("Event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
