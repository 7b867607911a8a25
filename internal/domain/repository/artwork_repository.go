package repository

import (
	"context"

	"gallery/internal/domain/entity"
	"gallery/internal/errors"
)

// ErrArtworkNotFound is returned when an artwork id does not exist.
var ErrArtworkNotFound = errors.New("artwork not found")

// ArtworkRepository reads gallery pieces with their techniques.
type ArtworkRepository interface {
	// FindByID loads one artwork, published or not, with techniques attached.
	FindByID(ctx context.Context, id string) (*entity.Artwork, error)

	// ListPublished returns published artworks by sort order. An empty category means all.
	ListPublished(ctx context.Context, category string) ([]*entity.Artwork, error)

	// UpdatePromptPrice sets or clears (nil) the per-artwork price override.
	UpdatePromptPrice(ctx context.Context, id string, price *int64) error
}
