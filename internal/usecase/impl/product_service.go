package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	catalog     service.ProductCatalog
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ShopRepo    repository.ShopRepository
	Catalog     service.ProductCatalog
	Logger      *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		shopRepo:    params.ShopRepo,
		catalog:     params.Catalog,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetProduct returns the cached basic info of a product
func (s *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.ProductInfo, error) {
	info, err := s.catalog.GetProductInfo(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return info, nil
}

// CreateProduct lists a product in the seller's shop
func (s *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !input.Price.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}

	shop, err := s.sellerShop(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsAvailable: input.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	s.log(ctx).Info("Product created", slog.String("productID", product.ID.String()), slog.String("shopID", shop.ID.String()))

	return product, nil
}

// UpdateProduct changes the given fields and drops the cached info
func (s *productService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
		}
		product.Name = name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
		}
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	product.UpdatedAt = s.now()

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	s.invalidate(ctx, productID)

	return product, nil
}

// DeleteProduct removes the product and its cached info
func (s *productService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	if _, err := s.ownedProduct(ctx, sellerID, productID); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}
	s.invalidate(ctx, productID)

	s.log(ctx).Info("Product deleted", slog.String("productID", productID.String()))

	return nil
}

// invalidate is best effort; a stale entry still expires with the cache TTL.
func (s *productService) invalidate(ctx context.Context, productID uuid.UUID) {
	if err := s.catalog.Invalidate(ctx, productID); err != nil {
		s.log(ctx).Warn("Product cache invalidation failed",
			slog.String("productID", productID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *productService) sellerShop(ctx context.Context, sellerID uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindShopByOwner(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound.WithDetails("seller has no shop")
		}

		return nil, errors.Wrap(err, "failed to find seller shop")
	}
	if shop.IsBanned {
		return nil, domainerrors.ErrShopBanned
	}

	return shop, nil
}

func (s *productService) ownedProduct(ctx context.Context, sellerID, productID uuid.UUID) (*entity.Product, error) {
	shop, err := s.sellerShop(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.ShopID != shop.ID {
		return nil, domainerrors.ErrForbidden.WithDetails("product belongs to another shop")
	}

	return product, nil
}
