// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/repository"
	"gallery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// UpsertByProvider inserts the user or refreshes the profile fields of the
// existing (provider, subject) row, then reads the stored row back.
func (repo *userRepository) UpsertByProvider(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate user id")
		}
		userM.ID = id
	}
	now := time.Now()
	userM.CreatedAt = now
	userM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "provider_subject"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
		}).
		Create(userM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	var stored model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_subject = ?", userM.Provider, userM.ProviderSubject).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload upserted user")
	}

	return toUserDomain(&stored), nil
}
