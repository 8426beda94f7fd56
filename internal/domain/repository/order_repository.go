package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderCodeConflict is returned when the generated order code is taken.
	ErrOrderCodeConflict = errors.New("order code already exists")
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	// CreateOrder inserts the order together with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindOrderByCode(ctx context.Context, code int64) (*entity.Order, error)

	// FindOrderByCodeForUpdate reads the order under a row lock.
	// Must be called inside a transaction.
	FindOrderByCodeForUpdate(ctx context.Context, code int64) (*entity.Order, error)

	// FindOrderByIDForUpdate reads the order under a row lock.
	// Must be called inside a transaction.
	FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByPaymentReference finds the most recent order whose notes
	// contain the given payment reference.
	FindOrderByPaymentReference(ctx context.Context, reference string) (*entity.Order, error)

	ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// UpdateOrder saves status, payment and note fields of the order.
	UpdateOrder(ctx context.Context, order *entity.Order) error
}
