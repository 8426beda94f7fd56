package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payment links and the gateway webhook.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CancelPaymentRequest represents the optional body of a payment link cancellation
type CancelPaymentRequest struct {
	Reason string `json:"reason" validate:"max=255"`
}

// WebhookResponse acknowledges a gateway callback.
type WebhookResponse struct {
	OrderCode int64  `json:"orderCode"`
	Status    string `json:"status"`
	Applied   bool   `json:"applied"`
	Outcome   string `json:"outcome"`
}

// CreateLink creates or reuses the checkout link of a pending order
func (h *PaymentHandler) CreateLink(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	link, err := h.paymentUC.CreatePaymentLink(c.Request().Context(), actor, orderID)
	if err != nil {
		return err
	}

	return response.Created(c, "Payment link created", toPaymentLinkResponse(link))
}

// GetInfo returns the payment state of an order
func (h *PaymentHandler) GetInfo(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderCode, err := orderCodeParam(c)
	if err != nil {
		return err
	}

	info, err := h.paymentUC.GetPaymentInfo(c.Request().Context(), actor, orderCode)
	if err != nil {
		return err
	}

	return response.OK(c, toPaymentInfoResponse(info))
}

// CancelLink cancels the checkout link and the pending order behind it
func (h *PaymentHandler) CancelLink(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderCode, err := orderCodeParam(c)
	if err != nil {
		return err
	}

	var req CancelPaymentRequest
	if c.Request().ContentLength > 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	info, err := h.paymentUC.CancelPaymentLink(c.Request().Context(), actor, orderCode, req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Payment link cancelled", toPaymentInfoResponse(info))
}

// GetQR renders the order's checkout link as a PNG QR code
func (h *PaymentHandler) GetQR(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderCode, err := orderCodeParam(c)
	if err != nil {
		return err
	}

	png, err := h.paymentUC.GetCheckoutQR(c.Request().Context(), actor, orderCode)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Webhook receives the gateway's payment callback. Numbers are kept as
// json.Number so order codes and amounts survive without float rounding.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()

	var payload usecase.WebhookPayload
	if err := decoder.Decode(&payload); err != nil {
		return domainerrors.ErrInvalidWebhookPayload.WithDetails("body is not a JSON object")
	}

	result, err := h.paymentUC.HandleWebhook(c.Request().Context(), &payload)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Webhook processed", WebhookResponse{
		OrderCode: result.OrderCode,
		Status:    result.Status,
		Applied:   result.Applied,
		Outcome:   result.Outcome,
	})
}
