package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherModel is the GORM-specific struct for the 'vouchers' table.
type VoucherModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code          string          `gorm:"type:varchar(64);not null;uniqueIndex:uq_vouchers_code"`
	Description   string          `gorm:"type:text"`
	DiscountType  string          `gorm:"type:varchar(20);not null"`
	DiscountValue decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MinOrderValue decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ExpiresAt     time.Time       `gorm:"not null"`
	MaxUses       *int
	UsedCount     int  `gorm:"not null;default:0"`
	IsActive      bool `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoucherModel) TableName() string {
	return "vouchers"
}

// UserVoucherModel is the GORM-specific struct for the 'user_vouchers' table.
type UserVoucherModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_user_vouchers_user_voucher"`
	VoucherID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_user_vouchers_user_voucher"`
	Voucher   *VoucherModel `gorm:"foreignKey:VoucherID"`
	ClaimedAt time.Time     `gorm:"not null"`
	IsUsed    bool          `gorm:"not null;default:false"`
	UsedAt    *time.Time
	OrderID   *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (UserVoucherModel) TableName() string {
	return "user_vouchers"
}
