package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the caller's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for adding a product to the cart
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest represents the request body for changing a line's quantity.
// Zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// GetCart returns the caller's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}

	return response.OK(c, toCartResponse(cart))
}

// AddItem adds a product to the caller's cart
func (h *CartHandler) AddItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.AddToCart(c.Request().Context(), actor.UserID, usecase.AddToCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Product added to cart", toCartResponse(cart))
}

// UpdateItem overwrites the quantity of a cart line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), actor.UserID, productID, req.Quantity)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Cart updated", toCartResponse(cart))
}

// RemoveItem deletes a cart line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveFromCart(c.Request().Context(), actor.UserID, productID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Product removed from cart", toCartResponse(cart))
}

// ClearCart empties the caller's cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), actor.UserID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Cart cleared", nil)
}
