package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the order lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CheckoutRequest represents the request body for placing an order from the cart
type CheckoutRequest struct {
	DeliveryAddress string `json:"deliveryAddress" validate:"required,max=500"`
	Notes           string `json:"notes" validate:"max=1000"`
	VoucherCode     string `json:"voucherCode" validate:"max=50"`
}

// UpdateOrderStatusRequest represents the request body for moving an order along its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid confirmed preparing shipping delivered cancelled"`
}

// Checkout turns the caller's cart into a pending order
func (h *OrderHandler) Checkout(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), actor.UserID, usecase.CheckoutInput{
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		VoucherCode:     req.VoucherCode,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Order placed", toOrderResponse(order))
}

// ListMine returns the caller's orders, newest first
func (h *OrderHandler) ListMine(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	limit, offset := pageParams(c)
	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), actor.UserID, limit, offset)
	if err != nil {
		return err
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return response.OK(c, out)
}

// Get returns an order visible to the caller
func (h *OrderHandler) Get(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return err
	}

	return response.OK(c, toOrderResponse(order))
}

// UpdateStatus moves an order to the requested status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), actor, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Order status updated", toOrderResponse(order))
}

// Cancel lets the buyer cancel an unpaid order
func (h *OrderHandler) Cancel(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), actor.UserID, orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Order cancelled", toOrderResponse(order))
}
