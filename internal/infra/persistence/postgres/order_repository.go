package postgres

import (
	"context"
	"time"

	"gallery/internal/domain/entity"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/repository"
	"gallery/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// MarkPaid only moves orders that are still pending, so replays change nothing.
func (repo *orderRepository) MarkPaid(ctx context.Context, orderID int64, payment entity.OrderPayment) (int64, error) {
	updates := map[string]any{
		"status":     string(entity.OrderStatusPaid),
		"updated_at": time.Now(),
	}
	if payment.Email != "" {
		updates["email"] = payment.Email
	}
	if payment.PaymentIntentID != nil {
		updates["payment_intent_id"] = *payment.PaymentIntentID
	}
	if payment.ShippingName != nil {
		updates["shipping_name"] = *payment.ShippingName
	}
	if payment.ShippingAddress != nil {
		updates["shipping_address"] = *payment.ShippingAddress
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", orderID, string(entity.OrderStatusPending)).
		Updates(updates)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order paid")
	}

	return result.RowsAffected, nil
}
