package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestVoucherService(t *testing.T, banned ...uuid.UUID) (*voucherService, *mockRepo.MockVoucherRepository, *txMocks) {
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	tx := newTxMocks(t)
	svc := NewVoucherService(VoucherServiceParams{
		TxManager:   tx.manager,
		VoucherRepo: voucherRepo,
		UserRepo:    newUserDirectory(t, banned...),
		Logger:      newDiscardLogger(),
	}).(*voucherService)
	svc.now = fixedClock(testNow)

	return svc, voucherRepo, tx
}

func activeVoucher(code string) *entity.Voucher {
	return &entity.Voucher{
		ID:            uuid.New(),
		Code:          code,
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		MinOrderValue: decimal.NewFromInt(100000),
		ExpiresAt:     testNow.Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestVoucherService_CreateVoucher(t *testing.T) {
	svc, voucherRepo, _ := newTestVoucherService(t)
	ctx := context.Background()

	voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(nil, repository.ErrVoucherNotFound)
	voucherRepo.EXPECT().CreateVoucher(ctx, mock.AnythingOfType("*entity.Voucher")).Return(nil)

	voucher, err := svc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		Code:          " sale10 ",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		MinOrderValue: decimal.NewFromInt(100000),
		ExpiresAt:     testNow.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "SALE10", voucher.Code)
	assert.True(t, voucher.IsActive)
	assert.Zero(t, voucher.UsedCount)
}

func TestVoucherService_CreateVoucher_CodeExists(t *testing.T) {
	svc, voucherRepo, _ := newTestVoucherService(t)
	ctx := context.Background()
	input := usecase.CreateVoucherInput{
		Code:          "SALE10",
		DiscountType:  entity.DiscountFixed,
		DiscountValue: decimal.NewFromInt(5000),
		ExpiresAt:     testNow.Add(time.Hour),
	}

	t.Run("found by lookup", func(t *testing.T) {
		voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(activeVoucher("SALE10"), nil).Once()

		_, err := svc.CreateVoucher(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrVoucherCodeExists)
	})

	t.Run("lost the insert race", func(t *testing.T) {
		voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(nil, repository.ErrVoucherNotFound).Once()
		voucherRepo.EXPECT().CreateVoucher(ctx, mock.Anything).Return(repository.ErrVoucherCodeConflict).Once()

		_, err := svc.CreateVoucher(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrVoucherCodeExists)
	})
}

func TestVoucherService_CreateVoucher_Validation(t *testing.T) {
	svc, _, _ := newTestVoucherService(t)
	zero := 0

	tests := []struct {
		name  string
		input usecase.CreateVoucherInput
	}{
		{"missing code", usecase.CreateVoucherInput{DiscountType: entity.DiscountFixed, DiscountValue: decimal.NewFromInt(1), ExpiresAt: testNow.Add(time.Hour)}},
		{"bad type", usecase.CreateVoucherInput{Code: "X", DiscountType: "free", DiscountValue: decimal.NewFromInt(1), ExpiresAt: testNow.Add(time.Hour)}},
		{"non-positive value", usecase.CreateVoucherInput{Code: "X", DiscountType: entity.DiscountFixed, ExpiresAt: testNow.Add(time.Hour)}},
		{"percentage over 100", usecase.CreateVoucherInput{Code: "X", DiscountType: entity.DiscountPercentage, DiscountValue: decimal.NewFromInt(101), ExpiresAt: testNow.Add(time.Hour)}},
		{"already expired", usecase.CreateVoucherInput{Code: "X", DiscountType: entity.DiscountFixed, DiscountValue: decimal.NewFromInt(1), ExpiresAt: testNow}},
		{"zero max uses", usecase.CreateVoucherInput{Code: "X", DiscountType: entity.DiscountFixed, DiscountValue: decimal.NewFromInt(1), ExpiresAt: testNow.Add(time.Hour), MaxUses: &zero}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateVoucher(context.Background(), tt.input)

			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestVoucherService_ClaimVoucher_AtMostOnce(t *testing.T) {
	svc, voucherRepo, _ := newTestVoucherService(t)
	ctx := context.Background()
	userID := uuid.New()
	voucher := activeVoucher("SALE10")

	voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
	voucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(nil, repository.ErrClaimNotFound).Once()
	voucherRepo.EXPECT().CreateClaim(ctx, mock.AnythingOfType("*entity.UserVoucher")).Return(nil).Once()

	claim, err := svc.ClaimVoucher(ctx, userID, "SALE10")
	require.NoError(t, err)
	assert.Equal(t, userID, claim.UserID)
	assert.Equal(t, voucher.ID, claim.VoucherID)
	assert.False(t, claim.IsUsed)
	assert.Equal(t, testNow, claim.ClaimedAt)

	voucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(claim, nil).Once()

	_, err = svc.ClaimVoucher(ctx, userID, "SALE10")
	assert.ErrorIs(t, err, domainerrors.ErrVoucherAlreadyClaimed)
}

func TestVoucherService_ClaimVoucher_ConcurrentDuplicate(t *testing.T) {
	svc, voucherRepo, _ := newTestVoucherService(t)
	ctx := context.Background()
	userID := uuid.New()
	voucher := activeVoucher("SALE10")

	voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
	voucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(nil, repository.ErrClaimNotFound)
	voucherRepo.EXPECT().CreateClaim(ctx, mock.Anything).Return(repository.ErrClaimConflict)

	_, err := svc.ClaimVoucher(ctx, userID, "SALE10")
	assert.ErrorIs(t, err, domainerrors.ErrVoucherAlreadyClaimed)
}

func TestVoucherService_ClaimVoucher_BannedUser(t *testing.T) {
	userID := uuid.New()
	svc, voucherRepo, _ := newTestVoucherService(t, userID)

	_, err := svc.ClaimVoucher(context.Background(), userID, "SALE10")
	assert.ErrorIs(t, err, domainerrors.ErrUserBanned)
	voucherRepo.AssertNotCalled(t, "CreateClaim", mock.Anything, mock.Anything)
}

func TestVoucherService_ClaimVoucher_Invalid(t *testing.T) {
	ctx := context.Background()
	one := 1

	tests := []struct {
		name   string
		mutate func(v *entity.Voucher)
	}{
		{"inactive", func(v *entity.Voucher) { v.IsActive = false }},
		{"expired", func(v *entity.Voucher) { v.ExpiresAt = testNow.Add(-time.Minute) }},
		{"exhausted", func(v *entity.Voucher) { v.MaxUses = &one; v.UsedCount = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, voucherRepo, _ := newTestVoucherService(t)
			voucher := activeVoucher("SALE10")
			tt.mutate(voucher)
			voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)

			_, err := svc.ClaimVoucher(ctx, uuid.New(), "SALE10")
			assert.ErrorIs(t, err, domainerrors.ErrVoucherInvalid)
		})
	}
}

func TestVoucherService_ClaimVoucher_NotFound(t *testing.T) {
	svc, voucherRepo, _ := newTestVoucherService(t)
	ctx := context.Background()

	voucherRepo.EXPECT().FindVoucherByCode(ctx, "NOPE").Return(nil, repository.ErrVoucherNotFound)

	_, err := svc.ClaimVoucher(ctx, uuid.New(), "nope")
	assert.ErrorIs(t, err, domainerrors.ErrVoucherNotFound)
}

func TestVoucherService_ApplyVoucher(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns discount without mutating", func(t *testing.T) {
		svc, voucherRepo, _ := newTestVoucherService(t)
		voucher := activeVoucher("SALE10")
		voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
		voucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(&entity.UserVoucher{ID: uuid.New()}, nil)

		discount, err := svc.ApplyVoucher(ctx, userID, "SALE10", decimal.NewFromInt(250000))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(25000).Equal(discount))
	})

	t.Run("below minimum is not applicable", func(t *testing.T) {
		svc, voucherRepo, _ := newTestVoucherService(t)
		voucher := activeVoucher("SALE10")
		voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
		voucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(&entity.UserVoucher{ID: uuid.New()}, nil)

		discount, err := svc.ApplyVoucher(ctx, userID, "SALE10", decimal.NewFromInt(99999))
		assert.ErrorIs(t, err, domainerrors.ErrVoucherNotApplicable)
		assert.True(t, discount.IsZero())
	})

	t.Run("not claimed", func(t *testing.T) {
		svc, voucherRepo, _ := newTestVoucherService(t)
		voucher := activeVoucher("SALE10")
		voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
		voucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(nil, repository.ErrClaimNotFound)

		_, err := svc.ApplyVoucher(ctx, userID, "SALE10", decimal.NewFromInt(250000))
		assert.ErrorIs(t, err, domainerrors.ErrVoucherNotClaimed)
	})

	t.Run("already used", func(t *testing.T) {
		svc, voucherRepo, _ := newTestVoucherService(t)
		voucher := activeVoucher("SALE10")
		voucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
		voucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(&entity.UserVoucher{ID: uuid.New(), IsUsed: true}, nil)

		_, err := svc.ApplyVoucher(ctx, userID, "SALE10", decimal.NewFromInt(250000))
		assert.ErrorIs(t, err, domainerrors.ErrVoucherAlreadyUsed)
	})
}

func TestVoucherService_UseVoucher_SingleTransaction(t *testing.T) {
	svc, _, tx := newTestVoucherService(t)
	ctx := context.Background()
	userID, orderID := uuid.New(), uuid.New()
	voucher := activeVoucher("SALE10")
	claim := &entity.UserVoucher{ID: uuid.New(), UserID: userID, VoucherID: voucher.ID}

	txVoucherRepo := mockRepo.NewMockVoucherRepository(t)
	tx.factory.EXPECT().NewVoucherRepository().Return(txVoucherRepo)
	txVoucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
	txVoucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(claim, nil)
	txVoucherRepo.EXPECT().MarkClaimUsed(ctx, claim.ID, orderID, testNow).Return(nil)
	txVoucherRepo.EXPECT().IncrementVoucherUsage(ctx, voucher.ID).Return(nil)

	require.NoError(t, svc.UseVoucher(ctx, userID, "SALE10", orderID))
	tx.manager.AssertNumberOfCalls(t, "Execute", 1)
}

func TestVoucherService_UseVoucher_Exhausted(t *testing.T) {
	svc, _, tx := newTestVoucherService(t)
	ctx := context.Background()
	userID, orderID := uuid.New(), uuid.New()
	voucher := activeVoucher("SALE10")
	claim := &entity.UserVoucher{ID: uuid.New()}

	txVoucherRepo := mockRepo.NewMockVoucherRepository(t)
	tx.factory.EXPECT().NewVoucherRepository().Return(txVoucherRepo)
	txVoucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
	txVoucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(claim, nil)
	txVoucherRepo.EXPECT().MarkClaimUsed(ctx, claim.ID, orderID, testNow).Return(nil)
	txVoucherRepo.EXPECT().IncrementVoucherUsage(ctx, voucher.ID).Return(repository.ErrVoucherExhausted)

	err := svc.UseVoucher(ctx, userID, "SALE10", orderID)
	assert.ErrorIs(t, err, domainerrors.ErrVoucherInvalid)
}

func TestVoucherService_UseVoucher_ClaimRace(t *testing.T) {
	svc, _, tx := newTestVoucherService(t)
	ctx := context.Background()
	userID, orderID := uuid.New(), uuid.New()
	voucher := activeVoucher("SALE10")
	claim := &entity.UserVoucher{ID: uuid.New()}

	txVoucherRepo := mockRepo.NewMockVoucherRepository(t)
	tx.factory.EXPECT().NewVoucherRepository().Return(txVoucherRepo)
	txVoucherRepo.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
	txVoucherRepo.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(claim, nil)
	txVoucherRepo.EXPECT().MarkClaimUsed(ctx, claim.ID, orderID, testNow).Return(repository.ErrClaimAlreadyUsed)

	err := svc.UseVoucher(ctx, userID, "SALE10", orderID)
	assert.ErrorIs(t, err, domainerrors.ErrVoucherAlreadyUsed)
}

func TestVoucherService_ListActiveVouchers_SkipsExhausted(t *testing.T) {
	svc, voucherRepo, _ := newTestVoucherService(t)
	ctx := context.Background()
	one := 1
	open := activeVoucher("OPEN")
	spent := activeVoucher("SPENT")
	spent.MaxUses = &one
	spent.UsedCount = 1

	voucherRepo.EXPECT().ListActiveVouchers(ctx, testNow).Return([]*entity.Voucher{open, spent}, nil)

	vouchers, err := svc.ListActiveVouchers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Voucher{open}, vouchers)
}

func TestVoucherService_DeactivateVoucher(t *testing.T) {
	svc, voucherRepo, _ := newTestVoucherService(t)
	ctx := context.Background()

	voucherRepo.EXPECT().DeactivateVoucher(ctx, "SALE10").Return(nil).Once()
	require.NoError(t, svc.DeactivateVoucher(ctx, "sale10"))

	voucherRepo.EXPECT().DeactivateVoucher(ctx, "GONE").Return(repository.ErrVoucherNotFound).Once()
	assert.ErrorIs(t, svc.DeactivateVoucher(ctx, "gone"), domainerrors.ErrVoucherNotFound)
}
