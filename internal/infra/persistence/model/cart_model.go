package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel is the GORM-specific struct for the 'carts' table.
type CartModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_carts_user"`
	Items     []*CartItemModel `gorm:"foreignKey:CartID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
type CartItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_cart_items_cart_product"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_cart_items_cart_product"`
	ShopID    uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
