package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// voucherRepository implements the domain.VoucherRepository interface.
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository is the constructor for voucherRepository.
func NewVoucherRepository(db *gorm.DB) repository.VoucherRepository {
	return &voucherRepository{db: db}
}

// CreateVoucher persists a new voucher. The unique index on code settles races.
func (repo *voucherRepository) CreateVoucher(ctx context.Context, voucher *entity.Voucher) error {
	voucherM := fromVoucherDomain(voucher)

	if err := repo.db.WithContext(ctx).Create(voucherM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrVoucherCodeConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create voucher")
	}

	voucher.ID = voucherM.ID
	voucher.CreatedAt = voucherM.CreatedAt
	voucher.UpdatedAt = voucherM.UpdatedAt

	return nil
}

// FindVoucherByCode retrieves a voucher by its code.
func (repo *voucherRepository) FindVoucherByCode(ctx context.Context, code string) (*entity.Voucher, error) {
	var voucherM model.VoucherModel
	if err := repo.db.WithContext(ctx).Where("code = ?", code).First(&voucherM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher by code")
	}

	return toVoucherDomain(&voucherM), nil
}

// ListActiveVouchers lists active vouchers that have not expired, soonest expiry first.
func (repo *voucherRepository) ListActiveVouchers(ctx context.Context, now time.Time) ([]*entity.Voucher, error) {
	var voucherModels []*model.VoucherModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ? AND expires_at > ?", true, now).
		Where("max_uses IS NULL OR used_count < max_uses").
		Order("expires_at ASC").
		Find(&voucherModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active vouchers")
	}

	vouchers := make([]*entity.Voucher, 0, len(voucherModels))
	for _, voucherM := range voucherModels {
		vouchers = append(vouchers, toVoucherDomain(voucherM))
	}

	return vouchers, nil
}

// DeactivateVoucher clears the active flag of a voucher.
func (repo *voucherRepository) DeactivateVoucher(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VoucherModel{}).
		Where("code = ?", code).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate voucher")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoucherNotFound
	}

	return nil
}

// IncrementVoucherUsage adds one use, guarded by the max uses limit.
func (repo *voucherRepository) IncrementVoucherUsage(ctx context.Context, voucherID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VoucherModel{}).
		Where("id = ?", voucherID).
		Where("max_uses IS NULL OR used_count < max_uses").
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment voucher usage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoucherExhausted
	}

	return nil
}

// CreateClaim persists a voucher claim.
func (repo *voucherRepository) CreateClaim(ctx context.Context, claim *entity.UserVoucher) error {
	claimM := &model.UserVoucherModel{
		ID:        claim.ID,
		UserID:    claim.UserID,
		VoucherID: claim.VoucherID,
		ClaimedAt: claim.ClaimedAt,
		IsUsed:    claim.IsUsed,
		UsedAt:    claim.UsedAt,
		OrderID:   claim.OrderID,
	}

	if err := repo.db.WithContext(ctx).Omit("Voucher").Create(claimM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrClaimConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create voucher claim")
	}

	claim.ID = claimM.ID

	return nil
}

// FindClaim retrieves the claim of a user on a voucher.
func (repo *voucherRepository) FindClaim(ctx context.Context, userID, voucherID uuid.UUID) (*entity.UserVoucher, error) {
	var claimM model.UserVoucherModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND voucher_id = ?", userID, voucherID).
		First(&claimM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher claim")
	}

	return toClaimDomain(&claimM), nil
}

// ListClaimsByUser lists a user's claims with their vouchers, newest first.
func (repo *voucherRepository) ListClaimsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserVoucher, error) {
	var claimModels []*model.UserVoucherModel
	err := repo.db.WithContext(ctx).
		Preload("Voucher").
		Where("user_id = ?", userID).
		Order("claimed_at DESC").
		Find(&claimModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list voucher claims")
	}

	claims := make([]*entity.UserVoucher, 0, len(claimModels))
	for _, claimM := range claimModels {
		claims = append(claims, toClaimDomain(claimM))
	}

	return claims, nil
}

// MarkClaimUsed flags an unused claim as redeemed.
func (repo *voucherRepository) MarkClaimUsed(ctx context.Context, claimID, orderID uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserVoucherModel{}).
		Where("id = ? AND is_used = ?", claimID, false).
		Updates(map[string]any{
			"is_used":  true,
			"used_at":  usedAt,
			"order_id": orderID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark voucher claim used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClaimAlreadyUsed
	}

	return nil
}

func toVoucherDomain(data *model.VoucherModel) *entity.Voucher {
	if data == nil {
		return nil
	}

	return &entity.Voucher{
		ID:            data.ID,
		Code:          data.Code,
		Description:   data.Description,
		DiscountType:  entity.DiscountType(data.DiscountType),
		DiscountValue: data.DiscountValue,
		MinOrderValue: data.MinOrderValue,
		ExpiresAt:     data.ExpiresAt,
		MaxUses:       data.MaxUses,
		UsedCount:     data.UsedCount,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromVoucherDomain(data *entity.Voucher) *model.VoucherModel {
	return &model.VoucherModel{
		ID:            data.ID,
		Code:          data.Code,
		Description:   data.Description,
		DiscountType:  string(data.DiscountType),
		DiscountValue: data.DiscountValue,
		MinOrderValue: data.MinOrderValue,
		ExpiresAt:     data.ExpiresAt,
		MaxUses:       data.MaxUses,
		UsedCount:     data.UsedCount,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toClaimDomain(data *model.UserVoucherModel) *entity.UserVoucher {
	return &entity.UserVoucher{
		ID:        data.ID,
		UserID:    data.UserID,
		VoucherID: data.VoucherID,
		Voucher:   toVoucherDomain(data.Voucher),
		ClaimedAt: data.ClaimedAt,
		IsUsed:    data.IsUsed,
		UsedAt:    data.UsedAt,
		OrderID:   data.OrderID,
	}
}
