package usecase

import (
	"context"

	"gallery/internal/domain/entity"

	"github.com/google/uuid"
)

// ArtworkView is an artwork as one viewer may see it. The premium payload is
// redacted unless PromptUnlocked is true.
type ArtworkView struct {
	Artwork        *entity.Artwork
	HasPrompt      bool
	PromptUnlocked bool
	PromptPrice    int64
}

// ArtworkUsecase serves the public gallery with per-viewer redaction.
type ArtworkUsecase interface {
	// ListArtworks returns published artworks. An empty category means all.
	ListArtworks(ctx context.Context, viewerID uuid.UUID, category string) ([]*ArtworkView, error)

	// GetArtwork returns one published artwork.
	GetArtwork(ctx context.Context, viewerID uuid.UUID, artworkID string) (*ArtworkView, error)
}
