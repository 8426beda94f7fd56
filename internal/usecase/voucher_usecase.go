package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateVoucherInput defines the data required to create a voucher.
type CreateVoucherInput struct {
	Code          string
	Description   string
	DiscountType  entity.DiscountType
	DiscountValue decimal.Decimal
	MinOrderValue decimal.Decimal
	ExpiresAt     time.Time
	MaxUses       *int
}

// VoucherUsecase defines the interface for voucher management use cases.
type VoucherUsecase interface {
	// CreateVoucher registers a new voucher code.
	CreateVoucher(ctx context.Context, input CreateVoucherInput) (*entity.Voucher, error)

	// ClaimVoucher records that the user holds the voucher. A user claims a code at most once.
	ClaimVoucher(ctx context.Context, userID uuid.UUID, code string) (*entity.UserVoucher, error)

	// ApplyVoucher previews the discount the user's claim grants on orderAmount. It does not mutate state.
	ApplyVoucher(ctx context.Context, userID uuid.UUID, code string, orderAmount decimal.Decimal) (decimal.Decimal, error)

	// UseVoucher redeems the user's claim against orderID and counts the use, in one transaction.
	UseVoucher(ctx context.Context, userID uuid.UUID, code string, orderID uuid.UUID) error

	ListActiveVouchers(ctx context.Context) ([]*entity.Voucher, error)
	ListMyVouchers(ctx context.Context, userID uuid.UUID) ([]*entity.UserVoucher, error)
	DeactivateVoucher(ctx context.Context, code string) error
}
