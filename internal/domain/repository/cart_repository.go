package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrCartExists is returned when a second cart is created for the same user.
	ErrCartExists = errors.New("user already has a cart")
	// ErrCartItemExists is returned when a second line is created for the same product.
	ErrCartItemExists = errors.New("cart already has a line for this product")
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	// FindCartByUser returns the user's cart with its items loaded.
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindCartByUserForUpdate is FindCartByUser holding the cart row lock until
	// the surrounding transaction ends. Every line mutation takes it first.
	FindCartByUserForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateCart inserts an empty cart. Returns ErrCartExists on a duplicate user.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// TouchCart refreshes the cart's updated timestamp.
	TouchCart(ctx context.Context, cartID uuid.UUID, at time.Time) error

	// CreateCartItem inserts a line. Returns ErrCartItemExists on a duplicate product.
	CreateCartItem(ctx context.Context, item *entity.CartItem) error
	UpdateCartItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteCartItem(ctx context.Context, cartID, productID uuid.UUID) error
	DeleteCartItems(ctx context.Context, cartID uuid.UUID) error
}
