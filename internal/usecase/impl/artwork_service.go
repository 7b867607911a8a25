package impl

import (
	"context"
	"log/slog"

	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/pricing"
	"gallery/internal/domain/repository"
	"gallery/internal/errors"
	"gallery/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type artworkService struct {
	artworkRepo     repository.ArtworkRepository
	entitlementRepo repository.EntitlementRepository
	prices          *pricing.Resolver
	logger          *slog.Logger
}

// ArtworkServiceParams holds dependencies for ArtworkService, injected by Fx.
type ArtworkServiceParams struct {
	fx.In

	ArtworkRepo     repository.ArtworkRepository
	EntitlementRepo repository.EntitlementRepository
	Prices          *pricing.Resolver
	Logger          *slog.Logger
}

// NewArtworkService creates the public gallery service.
func NewArtworkService(params ArtworkServiceParams) usecase.ArtworkUsecase {
	return &artworkService{
		artworkRepo:     params.ArtworkRepo,
		entitlementRepo: params.EntitlementRepo,
		prices:          params.Prices,
		logger:          params.Logger,
	}
}

func (srv *artworkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *artworkService) ListArtworks(ctx context.Context, viewerID uuid.UUID, category string) ([]*usecase.ArtworkView, error) {
	artworks, err := srv.artworkRepo.ListPublished(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artworks")
	}

	unlocked, err := srv.unlockedSet(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.ArtworkView, 0, len(artworks))
	for _, artwork := range artworks {
		_, owned := unlocked[artwork.ID]
		views = append(views, srv.view(artwork, owned))
	}

	srv.log(ctx).Debug("Listed artworks",
		slog.Int("count", len(views)),
		slog.Int("unlocked", len(unlocked)),
	)

	return views, nil
}

func (srv *artworkService) GetArtwork(ctx context.Context, viewerID uuid.UUID, artworkID string) (*usecase.ArtworkView, error) {
	artwork, err := srv.artworkRepo.FindByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, domainerrors.ErrArtworkNotFound
		}

		return nil, errors.Wrap(err, "failed to find artwork")
	}
	if !artwork.Published {
		return nil, domainerrors.ErrArtworkNotFound
	}

	owned := false
	if viewerID != uuid.Nil && artwork.HasPremiumContent() {
		owned, err = srv.entitlementRepo.HasCompleted(ctx, viewerID, artwork.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check entitlement")
		}
	}

	return srv.view(artwork, owned), nil
}

func (srv *artworkService) unlockedSet(ctx context.Context, viewerID uuid.UUID) (map[string]struct{}, error) {
	if viewerID == uuid.Nil {
		return map[string]struct{}{}, nil
	}

	unlocked, err := srv.entitlementRepo.ListCompletedArtworkIDs(ctx, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entitlements")
	}

	return unlocked, nil
}

// view redacts the premium payload unless the viewer owns it.
func (srv *artworkService) view(artwork *entity.Artwork, owned bool) *usecase.ArtworkView {
	hasPrompt := artwork.HasPremiumContent()
	unlocked := owned && hasPrompt

	shown := artwork
	if !unlocked {
		shown = artwork.Redacted()
	}

	return &usecase.ArtworkView{
		Artwork:        shown,
		HasPrompt:      hasPrompt,
		PromptUnlocked: unlocked,
		PromptPrice:    srv.prices.Resolve(artwork.PromptPrice),
	}
}
