package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code            int64             `gorm:"not null;uniqueIndex:uq_orders_code"`
	BuyerID         uuid.UUID         `gorm:"type:uuid;not null;index:idx_orders_buyer"`
	ShopID          uuid.UUID         `gorm:"type:uuid;not null;index:idx_orders_shop"`
	Status          string            `gorm:"type:varchar(20);not null;default:pending"`
	Subtotal        decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	Discount        decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	Total           decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	Notes           string            `gorm:"type:text"`
	DeliveryAddress string            `gorm:"type:text"`
	VoucherID       *uuid.UUID        `gorm:"type:uuid"`
	PaymentLinkID   string            `gorm:"type:varchar(64)"`
	CheckoutURL     string            `gorm:"type:text"`
	TransactionID   string            `gorm:"type:varchar(128)"`
	PaidAt          *time.Time
	Items           []*OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_order_items_order"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
