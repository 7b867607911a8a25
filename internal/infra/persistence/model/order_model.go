package model

import "time"

// OrderModel mirrors the print shop 'orders' table.
type OrderModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	Status          string  `gorm:"type:varchar(20);not null;default:'pending'"`
	Email           string  `gorm:"type:varchar(255)"`
	Total           int64   `gorm:"not null;default:0"`
	PaymentIntentID *string `gorm:"type:varchar(255)"`
	ShippingName    *string `gorm:"type:varchar(255)"`
	ShippingAddress *string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
