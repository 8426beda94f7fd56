package handler

import (
	"net/http"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestVoucherHandler(t *testing.T) (*VoucherHandler, *mockUsecase.MockVoucherUsecase) {
	voucherUC := mockUsecase.NewMockVoucherUsecase(t)

	return NewVoucherHandler(VoucherHandlerParams{VoucherUC: voucherUC, Logger: newDiscardLogger()}), voucherUC
}

func TestVoucherHandler_Apply(t *testing.T) {
	t.Run("previews the discount", func(t *testing.T) {
		h, voucherUC := newTestVoucherHandler(t)
		voucherUC.EXPECT().
			ApplyVoucher(mock.Anything, buyerID, "TET10", mock.MatchedBy(func(amount decimal.Decimal) bool {
				return amount.Equal(decimal.RequireFromString("200000"))
			})).
			Return(decimal.RequireFromString("20000"), nil).Once()

		rec := serve(t, h.Apply, testRequest{
			method: http.MethodPost,
			target: "/api/vouchers/TET10/apply",
			body:   `{"orderAmount":"200000"}`,
			params: map[string]string{"code": "TET10"},
			actor:  asBuyer(),
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ApplyVoucherResponse
		decodeData(t, rec, &resp)
		assert.Equal(t, "TET10", resp.Code)
		assert.True(t, decimal.RequireFromString("20000").Equal(resp.Discount))
		assert.True(t, decimal.RequireFromString("180000").Equal(resp.FinalAmount))
	})

	t.Run("below minimum order value", func(t *testing.T) {
		h, voucherUC := newTestVoucherHandler(t)
		voucherUC.EXPECT().ApplyVoucher(mock.Anything, buyerID, "TET10", mock.Anything).
			Return(decimal.Zero, domainerrors.ErrVoucherNotApplicable).Once()

		rec := serve(t, h.Apply, testRequest{
			method: http.MethodPost,
			target: "/api/vouchers/TET10/apply",
			body:   `{"orderAmount":1000}`,
			params: map[string]string{"code": "TET10"},
			actor:  asBuyer(),
		})

		requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VOUCHER_NOT_APPLICABLE")
	})
}

func TestVoucherHandler_Claim(t *testing.T) {
	t.Run("claims", func(t *testing.T) {
		h, voucherUC := newTestVoucherHandler(t)
		voucherUC.EXPECT().ClaimVoucher(mock.Anything, buyerID, "TET10").Return(&entity.UserVoucher{
			ID:        uuid.New(),
			UserID:    buyerID,
			ClaimedAt: time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC),
			Voucher:   &entity.Voucher{ID: uuid.New(), Code: "TET10", DiscountType: entity.DiscountPercentage, IsActive: true},
		}, nil).Once()

		rec := serve(t, h.Claim, testRequest{
			method: http.MethodPost,
			target: "/api/vouchers/TET10/claim",
			params: map[string]string{"code": "TET10"},
			actor:  asBuyer(),
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var claim ClaimResponse
		decodeData(t, rec, &claim)
		require.NotNil(t, claim.Voucher)
		assert.Equal(t, "TET10", claim.Voucher.Code)
		assert.False(t, claim.IsUsed)
	})

	t.Run("claimed twice", func(t *testing.T) {
		h, voucherUC := newTestVoucherHandler(t)
		voucherUC.EXPECT().ClaimVoucher(mock.Anything, buyerID, "TET10").
			Return(nil, domainerrors.ErrVoucherAlreadyClaimed).Once()

		rec := serve(t, h.Claim, testRequest{
			method: http.MethodPost,
			target: "/api/vouchers/TET10/claim",
			params: map[string]string{"code": "TET10"},
			actor:  asBuyer(),
		})

		requireErrorCode(t, rec, http.StatusConflict, "VOUCHER_ALREADY_CLAIMED")
	})
}

func TestVoucherHandler_Create(t *testing.T) {
	expiresAt := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
	maxUses := 100

	t.Run("creates", func(t *testing.T) {
		h, voucherUC := newTestVoucherHandler(t)
		voucherUC.EXPECT().CreateVoucher(mock.Anything, mock.MatchedBy(func(in usecase.CreateVoucherInput) bool {
			return in.Code == "TET10" &&
				in.DiscountType == entity.DiscountPercentage &&
				in.DiscountValue.Equal(decimal.NewFromInt(10)) &&
				in.ExpiresAt.Equal(expiresAt) &&
				in.MaxUses != nil && *in.MaxUses == maxUses
		})).Return(&entity.Voucher{
			ID:            uuid.New(),
			Code:          "TET10",
			DiscountType:  entity.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(10),
			ExpiresAt:     expiresAt,
			MaxUses:       &maxUses,
			IsActive:      true,
		}, nil).Once()

		rec := serve(t, h.Create, testRequest{
			method: http.MethodPost,
			target: "/api/vouchers",
			body:   `{"code":"TET10","discountType":"percentage","discountValue":10,"expiresAt":"2026-12-31T23:59:00Z","maxUses":100}`,
			actor:  asAdmin(),
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var v VoucherResponse
		decodeData(t, rec, &v)
		assert.Equal(t, "TET10", v.Code)
		require.NotNil(t, v.MaxUses)
		assert.Equal(t, 100, *v.MaxUses)
	})

	t.Run("unknown discount type", func(t *testing.T) {
		h, _ := newTestVoucherHandler(t)

		rec := serve(t, h.Create, testRequest{
			method: http.MethodPost,
			target: "/api/vouchers",
			body:   `{"code":"TET10","discountType":"bogo","discountValue":10,"expiresAt":"2026-12-31T23:59:00Z"}`,
			actor:  asAdmin(),
		})

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestVoucherHandler_ListsAndDeactivate(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		h, voucherUC := newTestVoucherHandler(t)
		voucherUC.EXPECT().ListActiveVouchers(mock.Anything).
			Return([]*entity.Voucher{{ID: uuid.New(), Code: "A"}, {ID: uuid.New(), Code: "B"}}, nil).Once()

		rec := serve(t, h.ListActive, testRequest{method: http.MethodGet, target: "/api/vouchers", actor: asBuyer()})

		require.Equal(t, http.StatusOK, rec.Code)
		var vouchers []VoucherResponse
		decodeData(t, rec, &vouchers)
		assert.Len(t, vouchers, 2)
	})

	t.Run("mine", func(t *testing.T) {
		h, voucherUC := newTestVoucherHandler(t)
		voucherUC.EXPECT().ListMyVouchers(mock.Anything, buyerID).Return([]*entity.UserVoucher{}, nil).Once()

		rec := serve(t, h.ListMine, testRequest{method: http.MethodGet, target: "/api/vouchers/mine", actor: asBuyer()})

		require.Equal(t, http.StatusOK, rec.Code)
		var claims []ClaimResponse
		decodeData(t, rec, &claims)
		assert.Empty(t, claims)
	})

	t.Run("deactivate", func(t *testing.T) {
		h, voucherUC := newTestVoucherHandler(t)
		voucherUC.EXPECT().DeactivateVoucher(mock.Anything, "TET10").Return(domainerrors.ErrVoucherNotFound).Once()

		rec := serve(t, h.Deactivate, testRequest{
			method: http.MethodDelete,
			target: "/api/vouchers/TET10",
			params: map[string]string{"code": "TET10"},
			actor:  asAdmin(),
		})

		requireErrorCode(t, rec, http.StatusNotFound, "VOUCHER_NOT_FOUND")
	})
}
