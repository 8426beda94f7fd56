package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog and the seller's product management.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for listing a product
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable *bool           `json:"isAvailable"`
}

// UpdateProductRequest represents the request body for changing a product.
// Omitted fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable *bool            `json:"isAvailable"`
}

// GetProduct returns a product's basic info
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	info, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.OK(c, info)
}

// CreateProduct lists a product in the seller's shop
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), actor.UserID, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: available,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Product created", toProductResponse(product))
}

// UpdateProduct changes a product of the seller's shop
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), actor.UserID, productID, usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Product updated", toProductResponse(product))
}

// DeleteProduct removes a product of the seller's shop
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), actor.UserID, productID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "Product deleted", nil)
}
