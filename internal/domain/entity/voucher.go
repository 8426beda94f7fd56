package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType selects how a voucher reduces an order total.
type DiscountType string

const (
	// DiscountPercentage takes Value percent off the total.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed takes a fixed amount off, capped at the total.
	DiscountFixed DiscountType = "fixed"
)

// IsValid checks if the discount type is a known value.
func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

var hundred = decimal.NewFromInt(100)

// moneyScale is the number of decimals numeric(14,2) money columns keep.
const moneyScale = 2

// Voucher is a discount code users claim and redeem against an order.
type Voucher struct {
	ID            uuid.UUID
	Code          string
	Description   string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinOrderValue decimal.Decimal
	ExpiresAt     time.Time
	MaxUses       *int
	UsedCount     int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsValid reports whether the voucher can still be claimed or redeemed at now.
func (v *Voucher) IsValid(now time.Time) bool {
	if !v.IsActive || !now.Before(v.ExpiresAt) {
		return false
	}

	return !v.IsExhausted()
}

// IsExhausted reports whether the global usage limit has been reached.
func (v *Voucher) IsExhausted() bool {
	return v.MaxUses != nil && v.UsedCount >= *v.MaxUses
}

// CalculateDiscount returns the discount the voucher grants on total. The
// result is zero below MinOrderValue, never exceeds total and is rounded to
// the two decimals money columns store.
func (v *Voucher) CalculateDiscount(total decimal.Decimal) decimal.Decimal {
	if total.LessThan(v.MinOrderValue) || !total.IsPositive() {
		return decimal.Zero
	}

	switch v.DiscountType {
	case DiscountPercentage:
		return total.Mul(v.DiscountValue).Div(hundred).Round(moneyScale)
	case DiscountFixed:
		return decimal.Min(v.DiscountValue, total).Round(moneyScale)
	default:
		return decimal.Zero
	}
}

// UserVoucher records that a user claimed a voucher and whether it was
// redeemed.
type UserVoucher struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VoucherID uuid.UUID
	Voucher   *Voucher
	ClaimedAt time.Time
	IsUsed    bool
	UsedAt    *time.Time
	OrderID   *uuid.UUID
}
