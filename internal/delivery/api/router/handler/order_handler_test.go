package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()}), orderUC
}

func pendingOrder(id uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:              id,
		Code:            1792317600000123,
		BuyerID:         buyerID,
		ShopID:          uuid.New(),
		Status:          entity.OrderStatusPending,
		Subtotal:        decimal.RequireFromString("125000"),
		Discount:        decimal.RequireFromString("12500"),
		Total:           decimal.RequireFromString("112500"),
		DeliveryAddress: "12 Hang Bac, Hanoi",
		Items: []*entity.OrderItem{
			{ProductID: uuid.New(), Name: "Pho bo", Quantity: 2, UnitPrice: decimal.RequireFromString("50000")},
			{ProductID: uuid.New(), Name: "Tra da", Quantity: 5, UnitPrice: decimal.RequireFromString("5000")},
		},
	}
}

func TestOrderHandler_Checkout(t *testing.T) {
	t.Run("places the order", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().Checkout(mock.Anything, buyerID, usecase.CheckoutInput{
			DeliveryAddress: "12 Hang Bac, Hanoi",
			Notes:           "no onions",
			VoucherCode:     "TET10",
		}).Return(pendingOrder(uuid.New()), nil).Once()

		rec := serve(t, h.Checkout, testRequest{
			method: http.MethodPost,
			target: "/api/orders/checkout",
			body:   `{"deliveryAddress":"12 Hang Bac, Hanoi","notes":"no onions","voucherCode":"TET10"}`,
			actor:  asBuyer(),
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var order OrderResponse
		decodeData(t, rec, &order)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.True(t, decimal.RequireFromString("112500").Equal(order.Total))
		require.Len(t, order.Items, 2)
		assert.True(t, decimal.RequireFromString("100000").Equal(order.Items[0].Subtotal))
	})

	t.Run("address required", func(t *testing.T) {
		h, _ := newTestOrderHandler(t)

		rec := serve(t, h.Checkout, testRequest{
			method: http.MethodPost,
			target: "/api/orders/checkout",
			body:   `{"notes":"no onions"}`,
			actor:  asBuyer(),
		})

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("multi shop cart", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().Checkout(mock.Anything, buyerID, mock.Anything).
			Return(nil, domainerrors.ErrCartMultipleShops).Once()

		rec := serve(t, h.Checkout, testRequest{
			method: http.MethodPost,
			target: "/api/orders/checkout",
			body:   `{"deliveryAddress":"12 Hang Bac, Hanoi"}`,
			actor:  asBuyer(),
		})

		requireErrorCode(t, rec, http.StatusUnprocessableEntity, "CART_MULTIPLE_SHOPS")
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	orderID := uuid.New()
	seller := &usecase.Actor{UserID: uuid.New(), Role: entity.RoleSeller}

	t.Run("moves the order", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		confirmed := pendingOrder(orderID)
		confirmed.Status = entity.OrderStatusConfirmed
		orderUC.EXPECT().UpdateStatus(mock.Anything, *seller, orderID, entity.OrderStatusConfirmed).Return(confirmed, nil).Once()

		rec := serve(t, h.UpdateStatus, testRequest{
			method: http.MethodPut,
			target: "/api/orders/" + orderID.String() + "/status",
			body:   `{"status":"confirmed"}`,
			params: map[string]string{"id": orderID.String()},
			actor:  seller,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var order OrderResponse
		decodeData(t, rec, &order)
		assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, _ := newTestOrderHandler(t)

		rec := serve(t, h.UpdateStatus, testRequest{
			method: http.MethodPut,
			target: "/api/orders/" + orderID.String() + "/status",
			body:   `{"status":"teleported"}`,
			params: map[string]string{"id": orderID.String()},
			actor:  seller,
		})

		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("illegal transition", func(t *testing.T) {
		h, orderUC := newTestOrderHandler(t)
		orderUC.EXPECT().UpdateStatus(mock.Anything, *seller, orderID, entity.OrderStatusDelivered).
			Return(nil, domainerrors.ErrInvalidOrderTransition.WithDetails("pending -> delivered")).Once()

		rec := serve(t, h.UpdateStatus, testRequest{
			method: http.MethodPut,
			target: "/api/orders/" + orderID.String() + "/status",
			body:   `{"status":"delivered"}`,
			params: map[string]string{"id": orderID.String()},
			actor:  seller,
		})

		requireErrorCode(t, rec, http.StatusConflict, "INVALID_ORDER_TRANSITION")
		assert.Equal(t, "pending -> delivered", decodeEnvelope(t, rec).Errors.Details)
	})
}

func TestOrderHandler_ListMineUsesPaging(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	orderUC.EXPECT().ListMyOrders(mock.Anything, buyerID, defaultPageLimit, 0).
		Return([]*entity.Order{pendingOrder(uuid.New())}, nil).Once()

	rec := serve(t, h.ListMine, testRequest{
		method: http.MethodGet,
		target: "/api/orders?limit=abc",
		actor:  asBuyer(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []OrderResponse
	decodeData(t, rec, &orders)
	assert.Len(t, orders, 1)
}

func TestOrderHandler_Cancel(t *testing.T) {
	orderID := uuid.New()

	h, orderUC := newTestOrderHandler(t)
	orderUC.EXPECT().CancelOrder(mock.Anything, buyerID, orderID).
		Return(nil, domainerrors.ErrOrderNotFound).Once()

	rec := serve(t, h.Cancel, testRequest{
		method: http.MethodPost,
		target: "/api/orders/" + orderID.String() + "/cancel",
		params: map[string]string{"id": orderID.String()},
		actor:  asBuyer(),
	})

	requireErrorCode(t, rec, http.StatusNotFound, "ORDER_NOT_FOUND")
}
