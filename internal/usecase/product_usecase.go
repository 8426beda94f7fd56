package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to list a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	IsAvailable bool
}

// UpdateProductInput holds the product fields to change. Nil fields are kept.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	IsAvailable *bool
}

// ProductUsecase defines the interface for product use cases.
type ProductUsecase interface {
	// GetProduct returns product basic info through the product cache.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.ProductInfo, error)

	CreateProduct(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
}
