package repository

import (
	"context"

	"gallery/internal/domain/entity"
)

// OrderRepository covers the one print shop transition the webhook owns.
type OrderRepository interface {
	// MarkPaid moves a pending order to paid and records the payment details.
	// It returns the number of rows changed; orders past pending are left alone.
	MarkPaid(ctx context.Context, orderID int64, payment entity.OrderPayment) (int64, error)
}
