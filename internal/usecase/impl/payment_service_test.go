package impl

import (
	"context"
	"encoding/json"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
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

type paymentTestDeps struct {
	svc       *paymentService
	orderRepo *mockRepo.MockOrderRepository
	txOrder   *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
	qrcode    *mockSvc.MockQRCodeService
	metrics   *mockSvc.MockMetricsRecorder
	tx        *txMocks
}

func newPaymentTestDeps(t *testing.T, env string, allowUnsigned bool) *paymentTestDeps {
	d := &paymentTestDeps{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		txOrder:   mockRepo.NewMockOrderRepository(t),
		gateway:   mockSvc.NewMockPaymentGateway(t),
		qrcode:    mockSvc.NewMockQRCodeService(t),
		metrics:   mockSvc.NewMockMetricsRecorder(t),
		tx:        newTxMocks(t),
	}
	d.tx.factory.EXPECT().NewOrderRepository().Return(d.txOrder).Maybe()

	cfg := &config.Config{Payment: &config.PaymentConfig{
		ReturnURL:            "https://shop.example/return",
		CancelURL:            "https://shop.example/cancel",
		AllowUnsignedWebhook: allowUnsigned,
	}}
	cfg.Env.Env = env

	d.svc = NewPaymentService(PaymentServiceParams{
		TxManager: d.tx.manager,
		OrderRepo: d.orderRepo,
		Gateway:   d.gateway,
		QRCode:    d.qrcode,
		Metrics:   d.metrics,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*paymentService)
	d.svc.now = fixedClock(testNow)

	return d
}

func webhookPayload(orderCode int64, status string, amount int64) *usecase.WebhookPayload {
	return &usecase.WebhookPayload{
		Code:    constants.GatewaySuccessCode,
		Success: true,
		Data: map[string]any{
			"orderCode":           json.Number(decimal.NewFromInt(orderCode).String()),
			"amount":              json.Number(decimal.NewFromInt(amount).String()),
			"status":              status,
			"code":                constants.GatewaySuccessCode,
			"desc":                "success",
			"reference":           "FT123",
			"transactionDateTime": "2026-10-18 10:00:00",
		},
		Signature: "sig",
	}
}

func TestPaymentService_HandleWebhook_PaidIsIdempotent(t *testing.T) {
	d := newPaymentTestDeps(t, constants.EnvProduction, false)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Code: 123, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(50000)}
	payload := webhookPayload(123, constants.PaymentStatusPaid, 50000)

	d.gateway.EXPECT().VerifySignature(payload.Data, "sig").Return(true)
	d.txOrder.EXPECT().FindOrderByCodeForUpdate(ctx, int64(123)).Return(order, nil)
	d.txOrder.EXPECT().UpdateOrder(ctx, order).Return(nil).Once()
	d.metrics.EXPECT().WebhookProcessed(webhookApplied).Once()
	d.metrics.EXPECT().WebhookProcessed(webhookDuplicate).Once()

	first, err := d.svc.HandleWebhook(ctx, payload)
	require.NoError(t, err)
	assert.True(t, first.Applied)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, "FT123", order.TransactionID)

	second, err := d.svc.HandleWebhook(ctx, payload)
	require.NoError(t, err)
	assert.False(t, second.Applied)
	assert.Equal(t, webhookDuplicate, second.Outcome)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
}

func TestPaymentService_HandleWebhook_StatusDerivedFromCode(t *testing.T) {
	d := newPaymentTestDeps(t, constants.EnvProduction, false)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), Code: 123, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(50000)}
	payload := webhookPayload(123, "", 50000)
	delete(payload.Data, "status")

	d.gateway.EXPECT().VerifySignature(payload.Data, "sig").Return(true)
	d.txOrder.EXPECT().FindOrderByCodeForUpdate(ctx, int64(123)).Return(order, nil)
	d.txOrder.EXPECT().UpdateOrder(ctx, order).Return(nil)
	d.metrics.EXPECT().WebhookProcessed(webhookApplied)

	result, err := d.svc.HandleWebhook(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPaid, result.Status)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
}

func TestPaymentService_HandleWebhook_Signature(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected outside test environments", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, true)
		payload := webhookPayload(123, constants.PaymentStatusPaid, 50000)
		d.gateway.EXPECT().VerifySignature(payload.Data, "sig").Return(false)
		d.metrics.EXPECT().WebhookProcessed(webhookInvalidSignature)

		_, err := d.svc.HandleWebhook(ctx, payload)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
		d.tx.manager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("accepted when explicitly allowed in test", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvTest, true)
		payload := webhookPayload(123, constants.PaymentStatusPaid, 50000)
		d.gateway.EXPECT().VerifySignature(payload.Data, "sig").Return(false)
		d.txOrder.EXPECT().FindOrderByCodeForUpdate(ctx, int64(123)).Return(nil, repository.ErrOrderNotFound)
		d.metrics.EXPECT().WebhookProcessed(webhookOrderNotFound)

		result, err := d.svc.HandleWebhook(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, webhookOrderNotFound, result.Outcome)
	})
}

func TestPaymentService_HandleWebhook_PartialFailureIsAcknowledged(t *testing.T) {
	d := newPaymentTestDeps(t, constants.EnvProduction, false)
	ctx := context.Background()
	payload := webhookPayload(123, constants.PaymentStatusPaid, 50000)
	delete(payload.Data, "orderCode")

	d.gateway.EXPECT().VerifySignature(payload.Data, "sig").Return(true)
	d.metrics.EXPECT().WebhookProcessed(webhookPartial)

	result, err := d.svc.HandleWebhook(ctx, payload)
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, webhookPartial, result.Outcome)
}

func TestPaymentService_HandleWebhook_EmptyPayload(t *testing.T) {
	d := newPaymentTestDeps(t, constants.EnvProduction, false)
	d.metrics.EXPECT().WebhookProcessed(webhookInvalidPayload)

	_, err := d.svc.HandleWebhook(context.Background(), &usecase.WebhookPayload{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidWebhookPayload)
}

func TestPaymentService_HandleWebhook_Outcomes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		order      *entity.Order
		status     string
		amount     int64
		outcome    string
		wantStatus entity.OrderStatus
		saves      bool
	}{
		{
			name:       "amount below total",
			order:      &entity.Order{Code: 123, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(50000)},
			status:     constants.PaymentStatusPaid,
			amount:     49999,
			outcome:    webhookAmountMismatch,
			wantStatus: entity.OrderStatusPending,
		},
		{
			name:       "fractional total paid in whole gateway units",
			order:      &entity.Order{Code: 123, Status: entity.OrderStatusPending, Total: decimal.RequireFromString("84999.15")},
			status:     constants.PaymentStatusPaid,
			amount:     84999,
			outcome:    webhookApplied,
			wantStatus: entity.OrderStatusPaid,
			saves:      true,
		},
		{
			name:       "fractional total rounding up is not covered by the lower unit",
			order:      &entity.Order{Code: 123, Status: entity.OrderStatusPending, Total: decimal.RequireFromString("84999.50")},
			status:     constants.PaymentStatusPaid,
			amount:     84999,
			outcome:    webhookAmountMismatch,
			wantStatus: entity.OrderStatusPending,
		},
		{
			name:       "payment after cancel",
			order:      &entity.Order{Code: 123, Status: entity.OrderStatusCancelled, Total: decimal.NewFromInt(50000)},
			status:     constants.PaymentStatusPaid,
			amount:     50000,
			outcome:    webhookLatePayment,
			wantStatus: entity.OrderStatusCancelled,
		},
		{
			name:       "payment for confirmed order keeps status",
			order:      &entity.Order{Code: 123, Status: entity.OrderStatusConfirmed, Total: decimal.NewFromInt(50000)},
			status:     constants.PaymentStatusPaid,
			amount:     50000,
			outcome:    webhookApplied,
			wantStatus: entity.OrderStatusConfirmed,
			saves:      true,
		},
		{
			name:       "cancelled link cancels pending order",
			order:      &entity.Order{Code: 123, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(50000)},
			status:     constants.PaymentStatusCancelled,
			outcome:    webhookApplied,
			wantStatus: entity.OrderStatusCancelled,
			saves:      true,
		},
		{
			name:       "cancelled link after payment is ignored",
			order:      &entity.Order{Code: 123, Status: entity.OrderStatusPaid, Total: decimal.NewFromInt(50000)},
			status:     constants.PaymentStatusCancelled,
			outcome:    webhookIgnored,
			wantStatus: entity.OrderStatusPaid,
		},
		{
			name:       "processing is ignored",
			order:      &entity.Order{Code: 123, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(50000)},
			status:     constants.PaymentStatusProcessing,
			outcome:    webhookIgnored,
			wantStatus: entity.OrderStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newPaymentTestDeps(t, constants.EnvProduction, false)
			payload := webhookPayload(123, tt.status, tt.amount)
			d.gateway.EXPECT().VerifySignature(payload.Data, "sig").Return(true)
			d.txOrder.EXPECT().FindOrderByCodeForUpdate(ctx, int64(123)).Return(tt.order, nil)
			if tt.saves {
				d.txOrder.EXPECT().UpdateOrder(ctx, tt.order).Return(nil)
			}
			d.metrics.EXPECT().WebhookProcessed(tt.outcome)

			result, err := d.svc.HandleWebhook(ctx, payload)
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Equal(t, tt.wantStatus, tt.order.Status)
		})
	}
}

func TestPaymentService_HandleWebhook_StoreFailureIsReturned(t *testing.T) {
	d := newPaymentTestDeps(t, constants.EnvProduction, false)
	ctx := context.Background()
	payload := webhookPayload(123, constants.PaymentStatusPaid, 50000)

	d.gateway.EXPECT().VerifySignature(payload.Data, "sig").Return(true)
	d.txOrder.EXPECT().FindOrderByCodeForUpdate(ctx, int64(123)).Return(nil, errors.New("connection reset"))
	d.metrics.EXPECT().WebhookProcessed(webhookError)

	_, err := d.svc.HandleWebhook(ctx, payload)
	require.Error(t, err)
}

func TestPaymentService_CreatePaymentLink(t *testing.T) {
	d := newPaymentTestDeps(t, constants.EnvProduction, false)
	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{
		ID:      uuid.New(),
		Code:    1792317600000123,
		BuyerID: buyerID,
		Status:  entity.OrderStatusPending,
		Total:   decimal.RequireFromString("112500.40"),
		Notes:   "no onions",
		Items: []*entity.OrderItem{
			{Name: "Com tam", Quantity: 2, UnitPrice: decimal.NewFromInt(60000)},
		},
	}
	locked := *order
	link := &service.PaymentLink{PaymentLinkID: "pl_1", OrderCode: order.Code, CheckoutURL: "https://pay.example/pl_1"}

	d.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	d.gateway.EXPECT().CreatePaymentLink(ctx, mock.MatchedBy(func(req *service.PaymentLinkRequest) bool {
		return req.OrderCode == order.Code &&
			req.Amount == 112500 &&
			req.Description == "DH1792317600000123" &&
			req.ReturnURL == "https://shop.example/return" &&
			req.CancelURL == "https://shop.example/cancel" &&
			len(req.Items) == 1 && req.Items[0].Price == 60000
	})).Return(link, nil)
	d.txOrder.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(&locked, nil)
	d.txOrder.EXPECT().UpdateOrder(ctx, &locked).Return(nil)

	got, err := d.svc.CreatePaymentLink(ctx, usecase.Actor{UserID: buyerID, Role: entity.RoleCustomer}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, link, got)
	assert.Equal(t, "pl_1", locked.PaymentLinkID)
	assert.Equal(t, "https://pay.example/pl_1", locked.CheckoutURL)
	assert.Equal(t, "no onions [payment:1792317600000123]", locked.Notes)
}

func TestPaymentService_CreatePaymentLink_Rejections(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()

	t.Run("existing link is reused", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		order := &entity.Order{ID: uuid.New(), Code: 5, BuyerID: buyerID, Status: entity.OrderStatusPending,
			Total: decimal.NewFromInt(1000), PaymentLinkID: "pl_5", CheckoutURL: "https://pay.example/pl_5"}
		d.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

		link, err := d.svc.CreatePaymentLink(ctx, usecase.Actor{UserID: buyerID}, order.ID)
		require.NoError(t, err)
		assert.Equal(t, "pl_5", link.PaymentLinkID)
		assert.Equal(t, int64(1000), link.Amount)
	})

	t.Run("paid order", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		order := &entity.Order{ID: uuid.New(), BuyerID: buyerID, Status: entity.OrderStatusPaid}
		d.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

		_, err := d.svc.CreatePaymentLink(ctx, usecase.Actor{UserID: buyerID}, order.ID)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotPayable)
	})

	t.Run("gateway failure", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		order := &entity.Order{ID: uuid.New(), Code: 7, BuyerID: buyerID, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(1000)}
		d.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
		d.gateway.EXPECT().CreatePaymentLink(ctx, mock.Anything).
			Return(nil, &service.GatewayError{Code: "20", Description: "invalid amount"})

		_, err := d.svc.CreatePaymentLink(ctx, usecase.Actor{UserID: buyerID}, order.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPaymentGatewayFailed)

		var appErr *domainerrors.BaseError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "invalid amount", appErr.Details())
	})
}

func TestPaymentService_GetPaymentInfo(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	buyer := usecase.Actor{UserID: buyerID, Role: entity.RoleCustomer}

	t.Run("gateway answer", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		info := &service.PaymentInfo{OrderCode: 9, Status: constants.PaymentStatusPending}
		d.orderRepo.EXPECT().FindOrderByCode(ctx, int64(9)).Return(&entity.Order{BuyerID: buyerID}, nil)
		d.gateway.EXPECT().GetPaymentInfo(ctx, int64(9)).Return(info, nil)

		got, err := d.svc.GetPaymentInfo(ctx, buyer, 9)
		require.NoError(t, err)
		assert.Same(t, info, got)
	})

	t.Run("fallback to local paid order", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		paidAt := testNow
		order := &entity.Order{BuyerID: buyerID, Status: entity.OrderStatusPaid, Total: decimal.NewFromInt(50000), PaidAt: &paidAt, PaymentLinkID: "pl_9"}
		d.orderRepo.EXPECT().FindOrderByCode(ctx, int64(9)).Return(order, nil)
		d.gateway.EXPECT().GetPaymentInfo(ctx, int64(9)).Return(nil, errors.New("dial tcp: timeout"))

		got, err := d.svc.GetPaymentInfo(ctx, buyer, 9)
		require.NoError(t, err)
		assert.True(t, got.Fallback)
		assert.Equal(t, constants.PaymentStatusPaid, got.Status)
		assert.Equal(t, int64(50000), got.AmountPaid)
		assert.Equal(t, "pl_9", got.PaymentLinkID)
	})

	t.Run("admin fallback by payment reference", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
		order := &entity.Order{Status: entity.OrderStatusPending, Total: decimal.NewFromInt(50000)}
		d.orderRepo.EXPECT().FindOrderByCode(ctx, int64(9)).Return(nil, repository.ErrOrderNotFound)
		d.gateway.EXPECT().GetPaymentInfo(ctx, int64(9)).Return(nil, errors.New("bad gateway"))
		d.orderRepo.EXPECT().FindOrderByPaymentReference(ctx, "[payment:9]").Return(order, nil)

		got, err := d.svc.GetPaymentInfo(ctx, admin, 9)
		require.NoError(t, err)
		assert.True(t, got.Fallback)
		assert.Equal(t, constants.PaymentStatusPending, got.Status)
		assert.Zero(t, got.AmountPaid)
	})

	t.Run("other buyer", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		d.orderRepo.EXPECT().FindOrderByCode(ctx, int64(9)).Return(&entity.Order{BuyerID: uuid.New()}, nil)

		_, err := d.svc.GetPaymentInfo(ctx, buyer, 9)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestPaymentService_CancelPaymentLink(t *testing.T) {
	d := newPaymentTestDeps(t, constants.EnvProduction, false)
	ctx := context.Background()
	buyerID := uuid.New()
	order := &entity.Order{Code: 9, BuyerID: buyerID, Status: entity.OrderStatusPending, PaymentLinkID: "pl_9"}
	locked := *order
	info := &service.PaymentInfo{OrderCode: 9, Status: constants.PaymentStatusCancelled}

	d.orderRepo.EXPECT().FindOrderByCode(ctx, int64(9)).Return(order, nil)
	d.gateway.EXPECT().CancelPaymentLink(ctx, int64(9), "changed my mind").Return(info, nil)
	d.txOrder.EXPECT().FindOrderByCodeForUpdate(ctx, int64(9)).Return(&locked, nil)
	d.txOrder.EXPECT().UpdateOrder(ctx, &locked).Return(nil)

	got, err := d.svc.CancelPaymentLink(ctx, usecase.Actor{UserID: buyerID}, 9, "changed my mind")
	require.NoError(t, err)
	assert.Same(t, info, got)
	assert.Equal(t, entity.OrderStatusCancelled, locked.Status)
}

func TestPaymentService_GetCheckoutQR(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()

	t.Run("renders checkout url", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		d.orderRepo.EXPECT().FindOrderByCode(ctx, int64(9)).Return(&entity.Order{BuyerID: buyerID, CheckoutURL: "https://pay.example/pl_9"}, nil)
		d.qrcode.EXPECT().GeneratePaymentQR("https://pay.example/pl_9").Return([]byte("png"), nil)

		png, err := d.svc.GetCheckoutQR(ctx, usecase.Actor{UserID: buyerID}, 9)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("no link yet", func(t *testing.T) {
		d := newPaymentTestDeps(t, constants.EnvProduction, false)
		d.orderRepo.EXPECT().FindOrderByCode(ctx, int64(9)).Return(&entity.Order{BuyerID: buyerID}, nil)

		_, err := d.svc.GetCheckoutQR(ctx, usecase.Actor{UserID: buyerID}, 9)
		assert.ErrorIs(t, err, domainerrors.ErrPaymentLinkMissing)
	})
}

func TestParseWebhookData(t *testing.T) {
	data := parseWebhookData(map[string]any{
		"orderCode":     float64(123),
		"amount":        "50000",
		"code":          "00",
		"description":   "DH123",
		"reference":     "FT123",
		"paymentLinkId": "pl_123",
	})

	assert.Equal(t, int64(123), data.OrderCode)
	assert.Equal(t, int64(50000), data.Amount)
	assert.Equal(t, constants.PaymentStatusPaid, data.Status)
	assert.Equal(t, "DH123", data.Description)
	assert.Equal(t, "pl_123", data.PaymentLinkID)

	failed := parseWebhookData(map[string]any{"orderCode": json.Number("5"), "code": "01"})
	assert.Empty(t, failed.Status)
}
