package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// VoucherHandlerParams holds dependencies for VoucherHandler, injected by Fx.
type VoucherHandlerParams struct {
	fx.In

	VoucherUC usecase.VoucherUsecase
	Logger    *slog.Logger
}

// VoucherHandler serves voucher claims and previews, and admin voucher management.
type VoucherHandler struct {
	voucherUC usecase.VoucherUsecase
	logger    *slog.Logger
}

// NewVoucherHandler is the constructor for VoucherHandler
func NewVoucherHandler(params VoucherHandlerParams) *VoucherHandler {
	return &VoucherHandler{
		voucherUC: params.VoucherUC,
		logger:    params.Logger,
	}
}

// CreateVoucherRequest represents the request body for creating a voucher
type CreateVoucherRequest struct {
	Code          string          `json:"code" validate:"required,max=50"`
	Description   string          `json:"description" validate:"max=500"`
	DiscountType  string          `json:"discountType" validate:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal `json:"discountValue" validate:"required"`
	MinOrderValue decimal.Decimal `json:"minOrderValue"`
	ExpiresAt     time.Time       `json:"expiresAt" validate:"required"`
	MaxUses       *int            `json:"maxUses" validate:"omitempty,min=1"`
}

// ApplyVoucherRequest represents the request body for previewing a discount
type ApplyVoucherRequest struct {
	OrderAmount decimal.Decimal `json:"orderAmount" validate:"required"`
}

// ApplyVoucherResponse is the discount a voucher grants on an amount.
type ApplyVoucherResponse struct {
	Code        string          `json:"code"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
	Discount    decimal.Decimal `json:"discount"`
	FinalAmount decimal.Decimal `json:"finalAmount"`
}

// ListActive returns the vouchers open for claiming
func (h *VoucherHandler) ListActive(c echo.Context) error {
	vouchers, err := h.voucherUC.ListActiveVouchers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, toVoucherResponses(vouchers))
}

// ListMine returns the caller's claimed vouchers
func (h *VoucherHandler) ListMine(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	claims, err := h.voucherUC.ListMyVouchers(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}

	out := make([]ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		out = append(out, toClaimResponse(claim))
	}

	return response.OK(c, out)
}

// Claim records that the caller holds a voucher
func (h *VoucherHandler) Claim(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	claim, err := h.voucherUC.ClaimVoucher(c.Request().Context(), actor.UserID, c.Param("code"))
	if err != nil {
		return err
	}

	return response.Created(c, "Voucher claimed", toClaimResponse(claim))
}

// Apply previews the discount of a claimed voucher
func (h *VoucherHandler) Apply(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req ApplyVoucherRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	code := c.Param("code")
	discount, err := h.voucherUC.ApplyVoucher(c.Request().Context(), actor.UserID, code, req.OrderAmount)
	if err != nil {
		return err
	}

	return response.OK(c, ApplyVoucherResponse{
		Code:        code,
		OrderAmount: req.OrderAmount,
		Discount:    discount,
		FinalAmount: req.OrderAmount.Sub(discount),
	})
}

// Create registers a voucher (admin)
func (h *VoucherHandler) Create(c echo.Context) error {
	var req CreateVoucherRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	voucher, err := h.voucherUC.CreateVoucher(c.Request().Context(), usecase.CreateVoucherInput{
		Code:          req.Code,
		Description:   req.Description,
		DiscountType:  entity.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MinOrderValue: req.MinOrderValue,
		ExpiresAt:     req.ExpiresAt,
		MaxUses:       req.MaxUses,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Voucher created", toVoucherResponse(voucher))
}

// Deactivate closes a voucher for claims and redemption (admin)
func (h *VoucherHandler) Deactivate(c echo.Context) error {
	if err := h.voucherUC.DeactivateVoucher(c.Request().Context(), c.Param("code")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Voucher deactivated", nil)
}
