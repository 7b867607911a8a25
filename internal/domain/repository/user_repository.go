// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"gallery/internal/domain/entity"
	"gallery/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpsertByProvider creates the user on first sign-in or refreshes name and
	// email on later ones. The (provider, provider subject) pair identifies the row.
	UpsertByProvider(ctx context.Context, user *entity.User) (*entity.User, error)
}
