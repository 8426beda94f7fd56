package service

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductCatalog serves product basic info through a time-boxed cache.
type ProductCatalog interface {
	// GetProductInfo returns cached info or loads it from the store.
	GetProductInfo(ctx context.Context, id uuid.UUID) (*entity.ProductInfo, error)

	// Invalidate drops the cached entry so the next read reloads it.
	Invalidate(ctx context.Context, id uuid.UUID) error
}
