package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines the product and quantity added to a cart.
type AddToCartInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartUsecase defines the interface for cart operations.
// Every mutation returns the cart as it is after the change.
type CartUsecase interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddToCart adds a product, merging with an existing line for the same product.
	AddToCart(ctx context.Context, userID uuid.UUID, input AddToCartInput) (*entity.Cart, error)

	// UpdateQuantity overwrites the quantity of a line. A quantity of zero or less removes it.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
