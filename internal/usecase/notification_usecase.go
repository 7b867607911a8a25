package usecase

import (
	"context"

	"gallery/internal/domain/service"
	"gallery/internal/errors"
)

// ErrInvalidConfirmation marks events that can never be delivered; the
// push is acknowledged instead of retried.
var ErrInvalidConfirmation = errors.New("invalid purchase confirmation")

// NotificationUsecase delivers purchase confirmations to collectors.
type NotificationUsecase interface {
	// SendPurchaseConfirmation emails the "Prompt Unlocked" message with a QR
	// code of the unlock link. Failures wrapping service.ErrMailTemporary are retryable.
	SendPurchaseConfirmation(ctx context.Context, event *service.PurchaseConfirmedEvent) error
}
