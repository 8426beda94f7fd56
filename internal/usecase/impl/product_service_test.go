package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productTestDeps struct {
	svc         *productService
	productRepo *mockRepo.MockProductRepository
	shopRepo    *mockRepo.MockShopRepository
	catalog     *mockSvc.MockProductCatalog
}

func newProductTestDeps(t *testing.T) *productTestDeps {
	d := &productTestDeps{
		productRepo: mockRepo.NewMockProductRepository(t),
		shopRepo:    mockRepo.NewMockShopRepository(t),
		catalog:     mockSvc.NewMockProductCatalog(t),
	}
	d.svc = NewProductService(ProductServiceParams{
		ProductRepo: d.productRepo,
		ShopRepo:    d.shopRepo,
		Catalog:     d.catalog,
		Logger:      newDiscardLogger(),
	}).(*productService)
	d.svc.now = fixedClock(testNow)

	return d
}

func TestProductService_CreateProduct(t *testing.T) {
	d := newProductTestDeps(t)
	ctx := context.Background()
	sellerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: sellerID}

	d.shopRepo.EXPECT().FindShopByOwner(ctx, sellerID).Return(shop, nil)
	d.productRepo.EXPECT().CreateProduct(ctx, mock.Anything).Return(nil)

	product, err := d.svc.CreateProduct(ctx, sellerID, usecase.CreateProductInput{
		Name:        "Banh mi",
		Price:       decimal.NewFromInt(25000),
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.Equal(t, shop.ID, product.ShopID)
	assert.True(t, product.IsAvailable)
}

func TestProductService_CreateProduct_Rejections(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("zero price", func(t *testing.T) {
		d := newProductTestDeps(t)
		_, err := d.svc.CreateProduct(ctx, sellerID, usecase.CreateProductInput{Name: "Pho", Price: decimal.Zero})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("banned shop", func(t *testing.T) {
		d := newProductTestDeps(t)
		d.shopRepo.EXPECT().FindShopByOwner(ctx, sellerID).Return(&entity.Shop{ID: uuid.New(), IsBanned: true}, nil)

		_, err := d.svc.CreateProduct(ctx, sellerID, usecase.CreateProductInput{Name: "Pho", Price: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, domainerrors.ErrShopBanned)
	})

	t.Run("no shop", func(t *testing.T) {
		d := newProductTestDeps(t)
		d.shopRepo.EXPECT().FindShopByOwner(ctx, sellerID).Return(nil, repository.ErrShopNotFound)

		_, err := d.svc.CreateProduct(ctx, sellerID, usecase.CreateProductInput{Name: "Pho", Price: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})
}

func TestProductService_UpdateProduct_InvalidatesCache(t *testing.T) {
	d := newProductTestDeps(t)
	ctx := context.Background()
	sellerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: sellerID}
	product := &entity.Product{ID: uuid.New(), ShopID: shop.ID, Name: "Pho", Price: decimal.NewFromInt(40000), IsAvailable: true}
	price := decimal.NewFromInt(45000)
	available := false

	d.shopRepo.EXPECT().FindShopByOwner(ctx, sellerID).Return(shop, nil)
	d.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	d.productRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)
	d.catalog.EXPECT().Invalidate(ctx, product.ID).Return(nil).Once()

	got, err := d.svc.UpdateProduct(ctx, sellerID, product.ID, usecase.UpdateProductInput{Price: &price, IsAvailable: &available})
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(price))
	assert.False(t, got.IsAvailable)
	assert.Equal(t, "Pho", got.Name)
}

func TestProductService_UpdateProduct_InvalidationFailureIsTolerated(t *testing.T) {
	d := newProductTestDeps(t)
	ctx := context.Background()
	sellerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: sellerID}
	product := &entity.Product{ID: uuid.New(), ShopID: shop.ID, Name: "Pho", Price: decimal.NewFromInt(40000)}
	name := "Pho bo"

	d.shopRepo.EXPECT().FindShopByOwner(ctx, sellerID).Return(shop, nil)
	d.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	d.productRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)
	d.catalog.EXPECT().Invalidate(ctx, product.ID).Return(errors.New("redis down"))

	got, err := d.svc.UpdateProduct(ctx, sellerID, product.ID, usecase.UpdateProductInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Pho bo", got.Name)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: sellerID}

	t.Run("own product", func(t *testing.T) {
		d := newProductTestDeps(t)
		product := &entity.Product{ID: uuid.New(), ShopID: shop.ID}
		d.shopRepo.EXPECT().FindShopByOwner(ctx, sellerID).Return(shop, nil)
		d.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
		d.productRepo.EXPECT().DeleteProduct(ctx, product.ID).Return(nil)
		d.catalog.EXPECT().Invalidate(ctx, product.ID).Return(nil)

		require.NoError(t, d.svc.DeleteProduct(ctx, sellerID, product.ID))
	})

	t.Run("another shop's product", func(t *testing.T) {
		d := newProductTestDeps(t)
		product := &entity.Product{ID: uuid.New(), ShopID: uuid.New()}
		d.shopRepo.EXPECT().FindShopByOwner(ctx, sellerID).Return(shop, nil)
		d.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

		err := d.svc.DeleteProduct(ctx, sellerID, product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("cached info", func(t *testing.T) {
		d := newProductTestDeps(t)
		info := &entity.ProductInfo{ID: uuid.New(), Name: "Pho"}
		d.catalog.EXPECT().GetProductInfo(ctx, info.ID).Return(info, nil)

		got, err := d.svc.GetProduct(ctx, info.ID)
		require.NoError(t, err)
		assert.Same(t, info, got)
	})

	t.Run("unknown product", func(t *testing.T) {
		d := newProductTestDeps(t)
		id := uuid.New()
		d.catalog.EXPECT().GetProductInfo(ctx, id).Return(nil, repository.ErrProductNotFound)

		_, err := d.svc.GetProduct(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}
