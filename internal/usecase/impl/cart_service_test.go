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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartTestDeps struct {
	svc       *cartService
	cartRepo  *mockRepo.MockCartRepository
	txCart    *mockRepo.MockCartRepository
	catalog   *mockSvc.MockProductCatalog
	tx        *txMocks
	userID    uuid.UUID
	userCart  *entity.Cart
	productID uuid.UUID
}

func newCartTestDeps(t *testing.T) *cartTestDeps {
	d := &cartTestDeps{
		cartRepo:  mockRepo.NewMockCartRepository(t),
		txCart:    mockRepo.NewMockCartRepository(t),
		catalog:   mockSvc.NewMockProductCatalog(t),
		tx:        newTxMocks(t),
		userID:    uuid.New(),
		productID: uuid.New(),
	}
	d.userCart = &entity.Cart{ID: uuid.New(), UserID: d.userID, Items: []*entity.CartItem{}}
	d.tx.factory.EXPECT().NewCartRepository().Return(d.txCart).Maybe()
	d.svc = NewCartService(CartServiceParams{
		TxManager: d.tx.manager,
		CartRepo:  d.cartRepo,
		Catalog:   d.catalog,
		Logger:    newDiscardLogger(),
	}).(*cartService)
	d.svc.now = fixedClock(testNow)

	return d
}

func TestCartService_GetCart_CreatesLazily(t *testing.T) {
	d := newCartTestDeps(t)
	ctx := context.Background()

	d.cartRepo.EXPECT().FindCartByUser(ctx, d.userID).Return(nil, repository.ErrCartNotFound)
	d.cartRepo.EXPECT().CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := d.svc.GetCart(ctx, d.userID)
	require.NoError(t, err)
	assert.Equal(t, d.userID, cart.UserID)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total().IsZero())
}

func TestCartService_GetCart_ExistingIsReturned(t *testing.T) {
	d := newCartTestDeps(t)
	ctx := context.Background()

	d.cartRepo.EXPECT().FindCartByUser(ctx, d.userID).Return(d.userCart, nil)

	cart, err := d.svc.GetCart(ctx, d.userID)
	require.NoError(t, err)
	assert.Same(t, d.userCart, cart)
}

func TestCartService_GetCart_ConcurrentCreateReadsBack(t *testing.T) {
	d := newCartTestDeps(t)
	ctx := context.Background()

	d.cartRepo.EXPECT().FindCartByUser(ctx, d.userID).Return(nil, repository.ErrCartNotFound).Once()
	d.cartRepo.EXPECT().CreateCart(ctx, mock.Anything).Return(repository.ErrCartExists)
	d.cartRepo.EXPECT().FindCartByUser(ctx, d.userID).Return(d.userCart, nil).Once()

	cart, err := d.svc.GetCart(ctx, d.userID)
	require.NoError(t, err)
	assert.Equal(t, d.userCart.ID, cart.ID)
}

func TestCartService_AddToCart_MergesWithFirstPrice(t *testing.T) {
	d := newCartTestDeps(t)
	ctx := context.Background()
	shopID := uuid.New()
	firstPrice := decimal.RequireFromString("45000.50")

	d.cartRepo.EXPECT().FindCartByUser(ctx, d.userID).Return(d.userCart, nil)

	// First add captures the price.
	d.catalog.EXPECT().GetProductInfo(ctx, d.productID).Return(&entity.ProductInfo{
		ID: d.productID, ShopID: shopID, Name: "Pho bo", Price: firstPrice, IsAvailable: true,
	}, nil).Once()
	d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(&entity.Cart{ID: d.userCart.ID, UserID: d.userID}, nil).Once()
	d.txCart.EXPECT().CreateCartItem(ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil).Once()
	d.txCart.EXPECT().TouchCart(ctx, d.userCart.ID, testNow).Return(nil)

	cart, err := d.svc.AddToCart(ctx, d.userID, usecase.AddToCartInput{ProductID: d.productID, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	line := cart.Items[0]
	assert.Equal(t, 2, line.Quantity)

	// Second add at a new price merges into the existing line.
	d.catalog.EXPECT().GetProductInfo(ctx, d.productID).Return(&entity.ProductInfo{
		ID: d.productID, ShopID: shopID, Name: "Pho bo", Price: decimal.NewFromInt(99000), IsAvailable: true,
	}, nil).Once()
	d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(&entity.Cart{
		ID: d.userCart.ID, UserID: d.userID, Items: []*entity.CartItem{line},
	}, nil).Once()
	d.txCart.EXPECT().UpdateCartItemQuantity(ctx, line.ID, 5).Return(nil).Once()

	cart, err = d.svc.AddToCart(ctx, d.userID, usecase.AddToCartInput{ProductID: d.productID, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.True(t, firstPrice.Equal(cart.Items[0].UnitPrice))
	assert.True(t, firstPrice.Mul(decimal.NewFromInt(5)).Equal(cart.Total()))
	// The merge reads the line under the cart row lock so concurrent adds sum up.
	d.txCart.AssertNotCalled(t, "FindCartByUser", mock.Anything, mock.Anything)
}

func TestCartService_AddToCart_RetriesLineRace(t *testing.T) {
	d := newCartTestDeps(t)
	ctx := context.Background()
	info := &entity.ProductInfo{ID: d.productID, ShopID: uuid.New(), Price: decimal.NewFromInt(1000), IsAvailable: true}
	existing := &entity.CartItem{ID: uuid.New(), ProductID: d.productID, Quantity: 1, UnitPrice: info.Price}

	d.catalog.EXPECT().GetProductInfo(ctx, d.productID).Return(info, nil)
	d.cartRepo.EXPECT().FindCartByUser(ctx, d.userID).Return(d.userCart, nil)
	d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(&entity.Cart{ID: d.userCart.ID}, nil).Once()
	d.txCart.EXPECT().CreateCartItem(ctx, mock.Anything).Return(repository.ErrCartItemExists).Once()
	d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(&entity.Cart{
		ID: d.userCart.ID, Items: []*entity.CartItem{existing},
	}, nil).Once()
	d.txCart.EXPECT().UpdateCartItemQuantity(ctx, existing.ID, 3).Return(nil)
	d.txCart.EXPECT().TouchCart(ctx, d.userCart.ID, testNow).Return(nil)

	cart, err := d.svc.AddToCart(ctx, d.userID, usecase.AddToCartInput{ProductID: d.productID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartService_AddToCart_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("non-positive quantity", func(t *testing.T) {
		d := newCartTestDeps(t)
		_, err := d.svc.AddToCart(ctx, d.userID, usecase.AddToCartInput{ProductID: d.productID, Quantity: 0})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		d := newCartTestDeps(t)
		d.catalog.EXPECT().GetProductInfo(ctx, d.productID).Return(nil, repository.ErrProductNotFound)

		_, err := d.svc.AddToCart(ctx, d.userID, usecase.AddToCartInput{ProductID: d.productID, Quantity: 1})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("unavailable product", func(t *testing.T) {
		d := newCartTestDeps(t)
		d.catalog.EXPECT().GetProductInfo(ctx, d.productID).Return(&entity.ProductInfo{ID: d.productID}, nil)

		_, err := d.svc.AddToCart(ctx, d.userID, usecase.AddToCartInput{ProductID: d.productID, Quantity: 1})
		assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites quantity", func(t *testing.T) {
		d := newCartTestDeps(t)
		item := &entity.CartItem{ID: uuid.New(), ProductID: d.productID, Quantity: 4, UnitPrice: decimal.NewFromInt(10)}
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(&entity.Cart{ID: d.userCart.ID, Items: []*entity.CartItem{item}}, nil)
		d.txCart.EXPECT().UpdateCartItemQuantity(ctx, item.ID, 7).Return(nil)
		d.txCart.EXPECT().TouchCart(ctx, d.userCart.ID, testNow).Return(nil)

		cart, err := d.svc.UpdateQuantity(ctx, d.userID, d.productID, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, cart.Items[0].Quantity)
		assert.Equal(t, testNow, cart.UpdatedAt)
	})

	t.Run("zero removes exactly one line", func(t *testing.T) {
		d := newCartTestDeps(t)
		other := &entity.CartItem{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1}
		target := &entity.CartItem{ID: uuid.New(), ProductID: d.productID, Quantity: 2}
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(&entity.Cart{ID: d.userCart.ID, Items: []*entity.CartItem{other, target}}, nil)
		d.txCart.EXPECT().DeleteCartItem(ctx, d.userCart.ID, d.productID).Return(nil)
		d.txCart.EXPECT().TouchCart(ctx, d.userCart.ID, testNow).Return(nil)

		cart, err := d.svc.UpdateQuantity(ctx, d.userID, d.productID, 0)
		require.NoError(t, err)
		assert.Equal(t, []*entity.CartItem{other}, cart.Items)
	})

	t.Run("missing line", func(t *testing.T) {
		d := newCartTestDeps(t)
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(&entity.Cart{ID: d.userCart.ID}, nil)

		_, err := d.svc.UpdateQuantity(ctx, d.userID, d.productID, 3)
		assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	})

	t.Run("no cart yet", func(t *testing.T) {
		d := newCartTestDeps(t)
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(nil, repository.ErrCartNotFound)

		_, err := d.svc.RemoveFromCart(ctx, d.userID, d.productID)
		assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes all lines", func(t *testing.T) {
		d := newCartTestDeps(t)
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(d.userCart, nil)
		d.txCart.EXPECT().DeleteCartItems(ctx, d.userCart.ID).Return(nil)
		d.txCart.EXPECT().TouchCart(ctx, d.userCart.ID, testNow).Return(nil)

		require.NoError(t, d.svc.ClearCart(ctx, d.userID))
	})

	t.Run("nothing to clear", func(t *testing.T) {
		d := newCartTestDeps(t)
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, d.userID).Return(nil, repository.ErrCartNotFound)

		require.NoError(t, d.svc.ClearCart(ctx, d.userID))
	})
}
