package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. A user is keyed by the OAuth provider
// and that provider's subject; the UUID is what the purchase flow passes around.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(100)"`
	Email           string    `gorm:"type:varchar(255);not null;index"`
	Provider        string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_users_provider_subject,priority:1"`
	ProviderSubject string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_provider_subject,priority:2"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
