package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput defines the data required to turn a cart into an order.
type CheckoutInput struct {
	DeliveryAddress string
	Notes           string
	// VoucherCode is optional. When set, the voucher is redeemed with the order.
	VoucherCode string
}

// OrderUsecase defines the interface for order use cases.
type OrderUsecase interface {
	// Checkout creates a pending order from the user's single-shop cart and empties the cart.
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*entity.Order, error)

	// GetOrder returns an order visible to the actor.
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)

	ListMyOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// UpdateStatus moves the order along its lifecycle on behalf of a seller, shipper or admin.
	UpdateStatus(ctx context.Context, actor Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// CancelOrder lets the buyer cancel an order that has not been paid or confirmed.
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
