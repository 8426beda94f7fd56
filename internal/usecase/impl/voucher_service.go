package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var maxPercentage = decimal.NewFromInt(100)

type voucherService struct {
	txManager   repository.TransactionManager
	voucherRepo repository.VoucherRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
	now         func() time.Time
}

// VoucherServiceParams holds dependencies for VoucherService, injected by Fx.
type VoucherServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VoucherRepo repository.VoucherRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewVoucherService creates a new voucher service instance
func NewVoucherService(params VoucherServiceParams) usecase.VoucherUsecase {
	return &voucherService{
		txManager:   params.TxManager,
		voucherRepo: params.VoucherRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *voucherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// normalizeVoucherCode makes codes case-insensitive.
func normalizeVoucherCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreateVoucher registers a new voucher code
func (s *voucherService) CreateVoucher(ctx context.Context, input usecase.CreateVoucherInput) (*entity.Voucher, error) {
	now := s.now()
	if err := validateVoucherInput(input, now); err != nil {
		return nil, err
	}

	code := normalizeVoucherCode(input.Code)
	_, err := s.voucherRepo.FindVoucherByCode(ctx, code)
	if err == nil {
		return nil, domainerrors.ErrVoucherCodeExists.WrapMessage("failed to create voucher " + code)
	}
	if !errors.Is(err, repository.ErrVoucherNotFound) {
		return nil, errors.Wrap(err, "failed to check voucher code")
	}

	voucher := &entity.Voucher{
		ID:            uuid.New(),
		Code:          code,
		Description:   input.Description,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		MinOrderValue: input.MinOrderValue,
		ExpiresAt:     input.ExpiresAt,
		MaxUses:       input.MaxUses,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The unique index on code settles concurrent creates of the same code.
	if err := s.voucherRepo.CreateVoucher(ctx, voucher); err != nil {
		if errors.Is(err, repository.ErrVoucherCodeConflict) {
			return nil, domainerrors.ErrVoucherCodeExists.WrapMessage("failed to create voucher " + code)
		}

		return nil, errors.Wrap(err, "failed to create voucher")
	}

	s.log(ctx).Info("Voucher created", slog.String("code", code), slog.String("type", string(voucher.DiscountType)))

	return voucher, nil
}

func validateVoucherInput(input usecase.CreateVoucherInput, now time.Time) error {
	switch {
	case strings.TrimSpace(input.Code) == "":
		return domainerrors.ErrValidationFailed.WithDetails("code is required")
	case !input.DiscountType.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("discount type must be percentage or fixed")
	case !input.DiscountValue.IsPositive():
		return domainerrors.ErrValidationFailed.WithDetails("discount value must be positive")
	case input.DiscountType == entity.DiscountPercentage && input.DiscountValue.GreaterThan(maxPercentage):
		return domainerrors.ErrValidationFailed.WithDetails("percentage discount cannot exceed 100")
	case input.MinOrderValue.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("minimum order value cannot be negative")
	case !input.ExpiresAt.After(now):
		return domainerrors.ErrValidationFailed.WithDetails("expiry must be in the future")
	case input.MaxUses != nil && *input.MaxUses <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("max uses must be positive")
	}

	return nil
}

// ClaimVoucher records that the user holds a valid voucher
func (s *voucherService) ClaimVoucher(ctx context.Context, userID uuid.UUID, code string) (*entity.UserVoucher, error) {
	if err := ensureNotBanned(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	voucher, err := findValidVoucher(ctx, s.voucherRepo, code, s.now())
	if err != nil {
		return nil, err
	}

	_, err = s.voucherRepo.FindClaim(ctx, userID, voucher.ID)
	if err == nil {
		return nil, domainerrors.ErrVoucherAlreadyClaimed.WrapMessage("failed to claim voucher " + voucher.Code)
	}
	if !errors.Is(err, repository.ErrClaimNotFound) {
		return nil, errors.Wrap(err, "failed to find voucher claim")
	}

	claim := &entity.UserVoucher{
		ID:        uuid.New(),
		UserID:    userID,
		VoucherID: voucher.ID,
		Voucher:   voucher,
		ClaimedAt: s.now(),
	}
	if err := s.voucherRepo.CreateClaim(ctx, claim); err != nil {
		if errors.Is(err, repository.ErrClaimConflict) {
			return nil, domainerrors.ErrVoucherAlreadyClaimed.WrapMessage("failed to claim voucher " + voucher.Code)
		}

		return nil, errors.Wrap(err, "failed to create voucher claim")
	}

	s.log(ctx).Info("Voucher claimed", slog.String("code", voucher.Code), slog.String("userID", userID.String()))

	return claim, nil
}

// ApplyVoucher previews the discount of the user's unused claim on orderAmount
func (s *voucherService) ApplyVoucher(ctx context.Context, userID uuid.UUID, code string, orderAmount decimal.Decimal) (decimal.Decimal, error) {
	voucher, err := findValidVoucher(ctx, s.voucherRepo, code, s.now())
	if err != nil {
		return decimal.Zero, err
	}

	if _, err := findUnusedClaim(ctx, s.voucherRepo, userID, voucher); err != nil {
		return decimal.Zero, err
	}

	discount := voucher.CalculateDiscount(orderAmount)
	if discount.IsZero() {
		return decimal.Zero, domainerrors.ErrVoucherNotApplicable.WithDetails(
			"minimum order value is " + voucher.MinOrderValue.String(),
		)
	}

	return discount, nil
}

// UseVoucher redeems the user's claim and counts the use atomically
func (s *voucherService) UseVoucher(ctx context.Context, userID uuid.UUID, code string, orderID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		_, err := redeemVoucher(ctx, txRepoFactory.NewVoucherRepository(), userID, code, orderID, s.now())

		return err
	})
	if err != nil {
		return err
	}

	s.log(ctx).Info("Voucher used",
		slog.String("code", normalizeVoucherCode(code)),
		slog.String("userID", userID.String()),
		slog.String("orderID", orderID.String()),
	)

	return nil
}

// redeemVoucher marks the user's claim used for orderID and increments the
// voucher usage counter. It must run inside a transaction so both writes
// commit together.
func redeemVoucher(
	ctx context.Context,
	voucherRepo repository.VoucherRepository,
	userID uuid.UUID,
	code string,
	orderID uuid.UUID,
	now time.Time,
) (*entity.Voucher, error) {
	voucher, err := findValidVoucher(ctx, voucherRepo, code, now)
	if err != nil {
		return nil, err
	}

	claim, err := findUnusedClaim(ctx, voucherRepo, userID, voucher)
	if err != nil {
		return nil, err
	}

	if err := redeemClaim(ctx, voucherRepo, voucher, claim, orderID, now); err != nil {
		return nil, err
	}

	return voucher, nil
}

func redeemClaim(
	ctx context.Context,
	voucherRepo repository.VoucherRepository,
	voucher *entity.Voucher,
	claim *entity.UserVoucher,
	orderID uuid.UUID,
	now time.Time,
) error {
	if err := voucherRepo.MarkClaimUsed(ctx, claim.ID, orderID, now); err != nil {
		if errors.Is(err, repository.ErrClaimAlreadyUsed) {
			return domainerrors.ErrVoucherAlreadyUsed.WrapMessage("failed to use voucher " + voucher.Code)
		}

		return errors.Wrap(err, "failed to mark voucher claim used")
	}
	claim.IsUsed = true
	claim.UsedAt = &now
	claim.OrderID = &orderID

	// Guarded increment: fails instead of exceeding max uses.
	if err := voucherRepo.IncrementVoucherUsage(ctx, voucher.ID); err != nil {
		if errors.Is(err, repository.ErrVoucherExhausted) {
			return domainerrors.ErrVoucherInvalid.WithDetails("usage limit reached")
		}

		return errors.Wrap(err, "failed to increment voucher usage")
	}
	voucher.UsedCount++

	return nil
}

func findValidVoucher(ctx context.Context, voucherRepo repository.VoucherRepository, code string, now time.Time) (*entity.Voucher, error) {
	code = normalizeVoucherCode(code)
	voucher, err := voucherRepo.FindVoucherByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound.WrapMessage("voucher " + code)
		}

		return nil, errors.Wrap(err, "failed to find voucher")
	}

	if !voucher.IsValid(now) {
		return nil, domainerrors.ErrVoucherInvalid.WrapMessage("voucher " + code)
	}

	return voucher, nil
}

func findUnusedClaim(
	ctx context.Context,
	voucherRepo repository.VoucherRepository,
	userID uuid.UUID,
	voucher *entity.Voucher,
) (*entity.UserVoucher, error) {
	claim, err := voucherRepo.FindClaim(ctx, userID, voucher.ID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return nil, domainerrors.ErrVoucherNotClaimed.WrapMessage("voucher " + voucher.Code)
		}

		return nil, errors.Wrap(err, "failed to find voucher claim")
	}

	if claim.IsUsed {
		return nil, domainerrors.ErrVoucherAlreadyUsed.WrapMessage("voucher " + voucher.Code)
	}

	return claim, nil
}

// ListActiveVouchers lists vouchers that can currently be claimed
func (s *voucherService) ListActiveVouchers(ctx context.Context) ([]*entity.Voucher, error) {
	vouchers, err := s.voucherRepo.ListActiveVouchers(ctx, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active vouchers")
	}

	available := make([]*entity.Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if !v.IsExhausted() {
			available = append(available, v)
		}
	}

	return available, nil
}

// ListMyVouchers lists the user's claims
func (s *voucherService) ListMyVouchers(ctx context.Context, userID uuid.UUID) ([]*entity.UserVoucher, error) {
	claims, err := s.voucherRepo.ListClaimsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list voucher claims")
	}

	return claims, nil
}

// DeactivateVoucher stops a voucher from being claimed or used
func (s *voucherService) DeactivateVoucher(ctx context.Context, code string) error {
	code = normalizeVoucherCode(code)
	if err := s.voucherRepo.DeactivateVoucher(ctx, code); err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return domainerrors.ErrVoucherNotFound.WrapMessage("voucher " + code)
		}

		return errors.Wrap(err, "failed to deactivate voucher")
	}

	s.log(ctx).Info("Voucher deactivated", slog.String("code", code))

	return nil
}
