package model

import (
	"time"

	"github.com/google/uuid"
)

// Index names the repository matches unique violations against.
const (
	PromptPurchaseCheckoutSessionIndex = "uq_prompt_purchases_checkout_session"
	PromptPurchaseCompletedIndex       = "uq_prompt_purchases_user_artwork_completed"
)

// PromptPurchaseModel mirrors the 'prompt_purchases' table, one row per paid unlock.
// The partial unique index on (user_id, artwork_id) for completed rows is
// created by the migration because GORM tags cannot express it.
type PromptPurchaseModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ArtworkID         string    `gorm:"type:varchar(128);not null;index"`
	CheckoutSessionID string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_prompt_purchases_checkout_session"`
	PaymentIntentID   *string   `gorm:"type:varchar(255);index"`
	AmountPaid        int64     `gorm:"not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:'pending'"`
	PayerEmail        *string   `gorm:"type:varchar(255)"`
	CreatedAt         time.Time `gorm:"index"`
	RefundedAt        *time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromptPurchaseModel) TableName() string {
	return "prompt_purchases"
}
