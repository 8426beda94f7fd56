package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for voucher persistence.
var (
	ErrVoucherNotFound = errors.New("voucher not found")
	// ErrVoucherCodeConflict is returned when the voucher code is taken.
	ErrVoucherCodeConflict = errors.New("voucher code already exists")
	// ErrVoucherExhausted is returned when the guarded usage increment matched no row.
	ErrVoucherExhausted = errors.New("voucher usage limit reached")
	ErrClaimNotFound    = errors.New("voucher claim not found")
	// ErrClaimConflict is returned when the user already claimed the voucher.
	ErrClaimConflict = errors.New("voucher already claimed by user")
	// ErrClaimAlreadyUsed is returned when the guarded claim update matched no row.
	ErrClaimAlreadyUsed = errors.New("voucher claim already used")
)

// VoucherRepository defines voucher and voucher claim persistence operations.
type VoucherRepository interface {
	CreateVoucher(ctx context.Context, voucher *entity.Voucher) error
	FindVoucherByCode(ctx context.Context, code string) (*entity.Voucher, error)

	// ListActiveVouchers returns active vouchers not expired at now.
	ListActiveVouchers(ctx context.Context, now time.Time) ([]*entity.Voucher, error)

	DeactivateVoucher(ctx context.Context, code string) error

	// IncrementVoucherUsage adds one use unless max uses is reached,
	// in which case it returns ErrVoucherExhausted.
	IncrementVoucherUsage(ctx context.Context, voucherID uuid.UUID) error

	// CreateClaim inserts a claim. Returns ErrClaimConflict on a duplicate (user, voucher).
	CreateClaim(ctx context.Context, claim *entity.UserVoucher) error
	FindClaim(ctx context.Context, userID, voucherID uuid.UUID) (*entity.UserVoucher, error)

	// ListClaimsByUser returns the user's claims with the voucher loaded.
	ListClaimsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserVoucher, error)

	// MarkClaimUsed flags an unused claim as redeemed for orderID.
	// Returns ErrClaimAlreadyUsed if the claim was already used.
	MarkClaimUsed(ctx context.Context, claimID, orderID uuid.UUID, usedAt time.Time) error
}
