package postgres

import (
	"context"

	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/repository"
	"gallery/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type artworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository is the constructor for artworkRepository.
func NewArtworkRepository(db *gorm.DB) repository.ArtworkRepository {
	return &artworkRepository{
		db: db,
	}
}

func preloadTechniques(db *gorm.DB) *gorm.DB {
	return db.Order("techniques.name ASC")
}

// FindByID loads one artwork with its techniques.
func (repo *artworkRepository) FindByID(ctx context.Context, id string) (*entity.Artwork, error) {
	var artworkM model.ArtworkModel

	if err := repo.db.WithContext(ctx).
		Preload("Techniques", preloadTechniques).
		Where("id = ?", id).
		First(&artworkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtworkNotFound
		}

		return nil, errors.Wrap(err, "failed to find artwork by id")
	}

	return toArtworkDomain(&artworkM), nil
}

// ListPublished returns published artworks in gallery order.
func (repo *artworkRepository) ListPublished(ctx context.Context, category string) ([]*entity.Artwork, error) {
	var artworkModels []*model.ArtworkModel

	query := repo.db.WithContext(ctx).
		Preload("Techniques", preloadTechniques).
		Where("published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&artworkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published artworks")
	}

	artworks := make([]*entity.Artwork, 0, len(artworkModels))
	for _, artworkM := range artworkModels {
		artworks = append(artworks, toArtworkDomain(artworkM))
	}

	return artworks, nil
}

// UpdatePromptPrice sets the override, or clears it when price is nil.
func (repo *artworkRepository) UpdatePromptPrice(ctx context.Context, id string, price *int64) error {
	var value any = gorm.Expr("NULL")
	if price != nil {
		value = *price
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ArtworkModel{}).
		Where("id = ?", id).
		Update("prompt_price", value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update prompt price")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArtworkNotFound
	}

	return nil
}
