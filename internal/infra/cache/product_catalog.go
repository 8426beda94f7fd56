package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const productKeyPrefix = "product:info:"

// CatalogParams defines the dependencies of the product catalog.
type CatalogParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Store       Store
	ProductRepo repository.ProductRepository
}

type productCatalog struct {
	store  Store
	repo   repository.ProductRepository
	ttl    time.Duration
	logger *slog.Logger
}

// NewProductCatalog creates a cache-aside catalog over the product repository.
func NewProductCatalog(params CatalogParams) service.ProductCatalog {
	return newProductCatalog(params.Store, params.ProductRepo, params.Config.Cache.TTL, params.Logger)
}

func newProductCatalog(store Store, repo repository.ProductRepository, ttl time.Duration, logger *slog.Logger) *productCatalog {
	return &productCatalog{store: store, repo: repo, ttl: ttl, logger: logger}
}

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

// GetProductInfo serves from the cache, loading and caching on a miss. A
// failing cache degrades to reading the store.
func (c *productCatalog) GetProductInfo(ctx context.Context, id uuid.UUID) (*entity.ProductInfo, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	key := productKey(id)

	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		logger.Warn("Product cache read failed", slog.String("productID", id.String()), slog.Any("error", err))
	}
	if ok {
		var info entity.ProductInfo
		if err := json.Unmarshal(raw, &info); err == nil {
			return &info, nil
		}
		logger.Warn("Discarding undecodable product cache entry", slog.String("productID", id.String()))
	}

	product, err := c.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := product.Info()

	encoded, err := json.Marshal(info)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode product info")
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl); err != nil {
		logger.Warn("Product cache write failed", slog.String("productID", id.String()), slog.Any("error", err))
	}

	return info, nil
}

// Invalidate removes the cached entry of a product.
func (c *productCatalog) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.store.Delete(ctx, productKey(id)); err != nil {
		return errors.Wrap(err, "failed to invalidate product cache")
	}

	return nil
}
