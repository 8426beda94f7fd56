package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shop persistence.
var (
	ErrShopNotFound = errors.New("shop not found")
	// ErrShopOwnerConflict is returned when the owner already has a shop.
	ErrShopOwnerConflict = errors.New("owner already has a shop")
)

// ShopRepository defines shop persistence operations.
type ShopRepository interface {
	CreateShop(ctx context.Context, shop *entity.Shop) error
	FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindShopByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// SetShopBanned sets or clears the ban flag. A nil bannedAt clears it.
	SetShopBanned(ctx context.Context, id uuid.UUID, bannedAt *time.Time) error
}
