package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderTestDeps struct {
	svc       *orderService
	orderRepo *mockRepo.MockOrderRepository
	shopRepo  *mockRepo.MockShopRepository
	tx        *txMocks
	txCart    *mockRepo.MockCartRepository
	txShop    *mockRepo.MockShopRepository
	txOrder   *mockRepo.MockOrderRepository
	txVoucher *mockRepo.MockVoucherRepository
}

func newOrderTestDeps(t *testing.T, banned ...uuid.UUID) *orderTestDeps {
	d := &orderTestDeps{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		shopRepo:  mockRepo.NewMockShopRepository(t),
		tx:        newTxMocks(t),
		txCart:    mockRepo.NewMockCartRepository(t),
		txShop:    mockRepo.NewMockShopRepository(t),
		txOrder:   mockRepo.NewMockOrderRepository(t),
		txVoucher: mockRepo.NewMockVoucherRepository(t),
	}
	d.tx.factory.EXPECT().NewCartRepository().Return(d.txCart).Maybe()
	d.tx.factory.EXPECT().NewShopRepository().Return(d.txShop).Maybe()
	d.tx.factory.EXPECT().NewOrderRepository().Return(d.txOrder).Maybe()
	d.tx.factory.EXPECT().NewVoucherRepository().Return(d.txVoucher).Maybe()
	d.tx.factory.EXPECT().NewUserRepository().Return(newUserDirectory(t, banned...)).Maybe()

	d.svc = NewOrderService(OrderServiceParams{
		TxManager: d.tx.manager,
		OrderRepo: d.orderRepo,
		ShopRepo:  d.shopRepo,
		Logger:    newDiscardLogger(),
	}).(*orderService)
	d.svc.now = fixedClock(testNow)
	d.svc.newCode = func(time.Time) int64 { return 1792317600000123 }

	return d
}

func singleShopCart(userID, shopID uuid.UUID) *entity.Cart {
	return &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: uuid.New(), ShopID: shopID, Name: "Com tam", Quantity: 2, UnitPrice: decimal.NewFromInt(60000)},
			{ID: uuid.New(), ProductID: uuid.New(), ShopID: shopID, Name: "Tra da", Quantity: 1, UnitPrice: decimal.NewFromInt(5000)},
		},
	}
}

func TestOrderService_Checkout_WithVoucher(t *testing.T) {
	d := newOrderTestDeps(t)
	ctx := context.Background()
	userID, shopID := uuid.New(), uuid.New()
	cart := singleShopCart(userID, shopID)
	voucher := activeVoucher("SALE10")
	claim := &entity.UserVoucher{ID: uuid.New(), UserID: userID, VoucherID: voucher.ID}

	d.txCart.EXPECT().FindCartByUserForUpdate(ctx, userID).Return(cart, nil)
	d.txShop.EXPECT().FindShopByID(ctx, shopID).Return(&entity.Shop{ID: shopID}, nil)
	d.txVoucher.EXPECT().FindVoucherByCode(ctx, "SALE10").Return(voucher, nil)
	d.txVoucher.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(claim, nil)
	d.txOrder.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	d.txVoucher.EXPECT().MarkClaimUsed(ctx, claim.ID, mock.AnythingOfType("uuid.UUID"), testNow).Return(nil)
	d.txVoucher.EXPECT().IncrementVoucherUsage(ctx, voucher.ID).Return(nil)
	d.txCart.EXPECT().DeleteCartItems(ctx, cart.ID).Return(nil)
	d.txCart.EXPECT().TouchCart(ctx, cart.ID, testNow).Return(nil)

	order, err := d.svc.Checkout(ctx, userID, usecase.CheckoutInput{
		DeliveryAddress: "12 Nguyen Hue",
		VoucherCode:     "sale10",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, int64(1792317600000123), order.Code)
	assert.Equal(t, shopID, order.ShopID)
	assert.Len(t, order.Items, 2)
	assert.True(t, decimal.NewFromInt(125000).Equal(order.Subtotal))
	assert.True(t, decimal.NewFromInt(12500).Equal(order.Discount))
	assert.True(t, decimal.NewFromInt(112500).Equal(order.Total))
	require.NotNil(t, order.VoucherID)
	assert.Equal(t, voucher.ID, *order.VoucherID)
	assert.Equal(t, order.ID, *claim.OrderID)
	assert.Empty(t, cart.Items)
}

func TestOrderService_Checkout_Rejections(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("banned buyer", func(t *testing.T) {
		d := newOrderTestDeps(t, userID)

		_, err := d.svc.Checkout(ctx, userID, usecase.CheckoutInput{})
		assert.ErrorIs(t, err, domainerrors.ErrUserBanned)
		d.txCart.AssertNotCalled(t, "FindCartByUserForUpdate", mock.Anything, mock.Anything)
		d.txOrder.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("no cart", func(t *testing.T) {
		d := newOrderTestDeps(t)
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, userID).Return(nil, repository.ErrCartNotFound)

		_, err := d.svc.Checkout(ctx, userID, usecase.CheckoutInput{})
		assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	})

	t.Run("empty cart", func(t *testing.T) {
		d := newOrderTestDeps(t)
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, userID).Return(&entity.Cart{ID: uuid.New()}, nil)

		_, err := d.svc.Checkout(ctx, userID, usecase.CheckoutInput{})
		assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	})

	t.Run("multiple shops", func(t *testing.T) {
		d := newOrderTestDeps(t)
		cart := singleShopCart(userID, uuid.New())
		cart.Items[1].ShopID = uuid.New()
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, userID).Return(cart, nil)

		_, err := d.svc.Checkout(ctx, userID, usecase.CheckoutInput{})
		assert.ErrorIs(t, err, domainerrors.ErrCartMultipleShops)
	})

	t.Run("banned shop", func(t *testing.T) {
		d := newOrderTestDeps(t)
		shopID := uuid.New()
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, userID).Return(singleShopCart(userID, shopID), nil)
		d.txShop.EXPECT().FindShopByID(ctx, shopID).Return(&entity.Shop{ID: shopID, IsBanned: true}, nil)

		_, err := d.svc.Checkout(ctx, userID, usecase.CheckoutInput{})
		assert.ErrorIs(t, err, domainerrors.ErrShopBanned)
	})

	t.Run("voucher below minimum", func(t *testing.T) {
		d := newOrderTestDeps(t)
		shopID := uuid.New()
		voucher := activeVoucher("BIG")
		voucher.MinOrderValue = decimal.NewFromInt(500000)
		d.txCart.EXPECT().FindCartByUserForUpdate(ctx, userID).Return(singleShopCart(userID, shopID), nil)
		d.txShop.EXPECT().FindShopByID(ctx, shopID).Return(&entity.Shop{ID: shopID}, nil)
		d.txVoucher.EXPECT().FindVoucherByCode(ctx, "BIG").Return(voucher, nil)
		d.txVoucher.EXPECT().FindClaim(ctx, userID, voucher.ID).Return(&entity.UserVoucher{ID: uuid.New()}, nil)

		_, err := d.svc.Checkout(ctx, userID, usecase.CheckoutInput{VoucherCode: "BIG"})
		assert.ErrorIs(t, err, domainerrors.ErrVoucherNotApplicable)
	})
}

func TestOrderService_Checkout_RetriesCodeCollision(t *testing.T) {
	d := newOrderTestDeps(t)
	ctx := context.Background()
	userID, shopID := uuid.New(), uuid.New()
	codes := []int64{111, 222}
	d.svc.newCode = func(time.Time) int64 {
		code := codes[0]
		codes = codes[1:]
		return code
	}

	d.txCart.EXPECT().FindCartByUserForUpdate(ctx, userID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Cart, error) {
		return singleShopCart(userID, shopID), nil
	})
	d.txShop.EXPECT().FindShopByID(ctx, shopID).Return(&entity.Shop{ID: shopID}, nil)
	d.txOrder.EXPECT().CreateOrder(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Code == 111 })).
		Return(repository.ErrOrderCodeConflict).Once()
	d.txOrder.EXPECT().CreateOrder(ctx, mock.MatchedBy(func(o *entity.Order) bool { return o.Code == 222 })).
		Return(nil).Once()
	d.txCart.EXPECT().DeleteCartItems(ctx, mock.Anything).Return(nil).Once()
	d.txCart.EXPECT().TouchCart(ctx, mock.Anything, testNow).Return(nil).Once()

	order, err := d.svc.Checkout(ctx, userID, usecase.CheckoutInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(222), order.Code)
	d.tx.manager.AssertNumberOfCalls(t, "Execute", 2)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	orderID, shopID := uuid.New(), uuid.New()
	seller := usecase.Actor{UserID: uuid.New(), Role: entity.RoleSeller}

	t.Run("seller confirms own shop order", func(t *testing.T) {
		d := newOrderTestDeps(t)
		order := &entity.Order{ID: orderID, ShopID: shopID, Status: entity.OrderStatusPaid}
		d.txOrder.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(order, nil)
		d.txShop.EXPECT().FindShopByOwner(ctx, seller.UserID).Return(&entity.Shop{ID: shopID}, nil)
		d.txOrder.EXPECT().UpdateOrder(ctx, order).Return(nil)

		updated, err := d.svc.UpdateStatus(ctx, seller, orderID, entity.OrderStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	})

	t.Run("seller of another shop", func(t *testing.T) {
		d := newOrderTestDeps(t)
		d.txOrder.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(&entity.Order{ID: orderID, ShopID: shopID, Status: entity.OrderStatusPending}, nil)
		d.txShop.EXPECT().FindShopByOwner(ctx, seller.UserID).Return(&entity.Shop{ID: uuid.New()}, nil)

		_, err := d.svc.UpdateStatus(ctx, seller, orderID, entity.OrderStatusConfirmed)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("illegal transition", func(t *testing.T) {
		d := newOrderTestDeps(t)
		admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
		d.txOrder.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil)

		_, err := d.svc.UpdateStatus(ctx, admin, orderID, entity.OrderStatusCancelled)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)
	})

	t.Run("shipper cannot confirm", func(t *testing.T) {
		d := newOrderTestDeps(t)
		shipper := usecase.Actor{UserID: uuid.New(), Role: entity.RoleShipper}

		_, err := d.svc.UpdateStatus(ctx, shipper, orderID, entity.OrderStatusConfirmed)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("paid is reserved for the gateway", func(t *testing.T) {
		d := newOrderTestDeps(t)
		admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

		_, err := d.svc.UpdateStatus(ctx, admin, orderID, entity.OrderStatusPaid)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()
	buyerID, orderID := uuid.New(), uuid.New()

	t.Run("pending order", func(t *testing.T) {
		d := newOrderTestDeps(t)
		order := &entity.Order{ID: orderID, BuyerID: buyerID, Status: entity.OrderStatusPending}
		d.txOrder.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(order, nil)
		d.txOrder.EXPECT().UpdateOrder(ctx, order).Return(nil)

		cancelled, err := d.svc.CancelOrder(ctx, buyerID, orderID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	})

	t.Run("paid order", func(t *testing.T) {
		d := newOrderTestDeps(t)
		d.txOrder.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(&entity.Order{ID: orderID, BuyerID: buyerID, Status: entity.OrderStatusPaid}, nil)

		_, err := d.svc.CancelOrder(ctx, buyerID, orderID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderTransition)
	})

	t.Run("someone else's order", func(t *testing.T) {
		d := newOrderTestDeps(t)
		d.txOrder.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(&entity.Order{ID: orderID, BuyerID: uuid.New(), Status: entity.OrderStatusPending}, nil)

		_, err := d.svc.CancelOrder(ctx, buyerID, orderID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown order", func(t *testing.T) {
		d := newOrderTestDeps(t)
		d.txOrder.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := d.svc.CancelOrder(ctx, buyerID, orderID)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_GetOrder_Access(t *testing.T) {
	ctx := context.Background()
	buyerID, orderID := uuid.New(), uuid.New()
	order := &entity.Order{ID: orderID, BuyerID: buyerID, ShopID: uuid.New()}

	t.Run("buyer", func(t *testing.T) {
		d := newOrderTestDeps(t)
		d.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil)

		got, err := d.svc.GetOrder(ctx, usecase.Actor{UserID: buyerID, Role: entity.RoleCustomer}, orderID)
		require.NoError(t, err)
		assert.Same(t, order, got)
	})

	t.Run("other customer", func(t *testing.T) {
		d := newOrderTestDeps(t)
		d.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil)

		_, err := d.svc.GetOrder(ctx, usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}, orderID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("shop owner", func(t *testing.T) {
		d := newOrderTestDeps(t)
		sellerID := uuid.New()
		d.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil)
		d.shopRepo.EXPECT().FindShopByOwner(ctx, sellerID).Return(&entity.Shop{ID: order.ShopID}, nil)

		_, err := d.svc.GetOrder(ctx, usecase.Actor{UserID: sellerID, Role: entity.RoleSeller}, orderID)
		require.NoError(t, err)
	})
}

func TestNewOrderCode_FitsJSONNumbers(t *testing.T) {
	code := newOrderCode(testNow)
	assert.Greater(t, code, testNow.UnixMilli()*1000-1)
	assert.Less(t, code, int64(1)<<53)
}
