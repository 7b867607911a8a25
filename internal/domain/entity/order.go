package entity

import "time"

// OrderStatus is the state of a print shop order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a print shop order. Only the payment transition is handled here;
// the shop owns everything else.
type Order struct {
	ID              int64
	Status          OrderStatus
	Email           string
	Total           int64
	PaymentIntentID *string
	ShippingName    *string
	ShippingAddress *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderPayment is what a completed checkout tells us about a print order.
type OrderPayment struct {
	Email           string
	PaymentIntentID *string
	ShippingName    *string
	// ShippingAddress is the provider's address object serialized as JSON.
	ShippingAddress *string
}
