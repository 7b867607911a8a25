package postgres

import (
	"context"
	"fmt"

	"gallery/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// completedPurchaseIndexSQL backs the one-completed-unlock-per-user-and-artwork rule.
var completedPurchaseIndexSQL = fmt.Sprintf(
	`CREATE UNIQUE INDEX IF NOT EXISTS %s ON prompt_purchases (user_id, artwork_id) WHERE status = 'completed'`,
	model.PromptPurchaseCompletedIndex,
)

// Migrate creates or updates every table and the indexes GORM tags cannot express.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	if err := db.Exec(completedPurchaseIndexSQL).Error; err != nil {
		return errors.Wrap(err, "create completed purchase index")
	}

	return nil
}
