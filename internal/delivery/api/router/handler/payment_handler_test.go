package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPaymentHandler(t *testing.T) (*PaymentHandler, *mockUsecase.MockPaymentUsecase) {
	paymentUC := mockUsecase.NewMockPaymentUsecase(t)

	return NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC, Logger: newDiscardLogger()}), paymentUC
}

func TestPaymentHandler_Webhook(t *testing.T) {
	t.Run("keeps numbers exact and acknowledges the delivery", func(t *testing.T) {
		h, paymentUC := newTestPaymentHandler(t)
		paymentUC.EXPECT().HandleWebhook(mock.Anything, mock.MatchedBy(func(p *usecase.WebhookPayload) bool {
			code, ok := p.Data["orderCode"].(json.Number)
			return ok && code.String() == "1792317600000123" && p.Signature == "abc" && p.Code == "00"
		})).Return(&usecase.WebhookResult{
			OrderCode: 1792317600000123,
			Status:    "PAID",
			Applied:   true,
			Outcome:   "paid",
		}, nil).Once()

		rec := serve(t, h.Webhook, testRequest{
			method: http.MethodPost,
			target: "/api/payments/webhook",
			body:   `{"code":"00","desc":"success","success":true,"data":{"orderCode":1792317600000123,"amount":50000,"code":"00"},"signature":"abc"}`,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp WebhookResponse
		decodeData(t, rec, &resp)
		assert.Equal(t, int64(1792317600000123), resp.OrderCode)
		assert.True(t, resp.Applied)
		assert.Equal(t, "paid", resp.Outcome)
	})

	t.Run("bad signature", func(t *testing.T) {
		h, paymentUC := newTestPaymentHandler(t)
		paymentUC.EXPECT().HandleWebhook(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidSignature).Once()

		rec := serve(t, h.Webhook, testRequest{
			method: http.MethodPost,
			target: "/api/payments/webhook",
			body:   `{"data":{"orderCode":1},"signature":"forged"}`,
		})

		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_SIGNATURE")
	})

	t.Run("non JSON body", func(t *testing.T) {
		h, _ := newTestPaymentHandler(t)

		rec := serve(t, h.Webhook, testRequest{
			method: http.MethodPost,
			target: "/api/payments/webhook",
			body:   `not json`,
		})

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_WEBHOOK_PAYLOAD")
	})
}

func TestPaymentHandler_CreateLink(t *testing.T) {
	orderID := uuid.New()

	h, paymentUC := newTestPaymentHandler(t)
	paymentUC.EXPECT().CreatePaymentLink(mock.Anything, *asBuyer(), orderID).Return(&service.PaymentLink{
		PaymentLinkID: "plink-1",
		OrderCode:     1792317600000123,
		Amount:        112500,
		Status:        "PENDING",
		CheckoutURL:   "https://pay.example/checkout/plink-1",
	}, nil).Once()

	rec := serve(t, h.CreateLink, testRequest{
		method: http.MethodPost,
		target: "/api/payments/orders/" + orderID.String() + "/link",
		params: map[string]string{"id": orderID.String()},
		actor:  asBuyer(),
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var link PaymentLinkResponse
	decodeData(t, rec, &link)
	assert.Equal(t, "plink-1", link.PaymentLinkID)
	assert.Equal(t, int64(112500), link.Amount)
	assert.Equal(t, "https://pay.example/checkout/plink-1", link.CheckoutURL)
}

func TestPaymentHandler_GetInfo(t *testing.T) {
	t.Run("fallback is visible to the client", func(t *testing.T) {
		h, paymentUC := newTestPaymentHandler(t)
		paymentUC.EXPECT().GetPaymentInfo(mock.Anything, *asBuyer(), int64(42)).Return(&service.PaymentInfo{
			OrderCode: 42,
			Amount:    50000,
			Status:    "PAID",
			CreatedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
			Fallback:  true,
		}, nil).Once()

		rec := serve(t, h.GetInfo, testRequest{
			method: http.MethodGet,
			target: "/api/payments/42",
			params: map[string]string{"orderCode": "42"},
			actor:  asBuyer(),
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var info PaymentInfoResponse
		decodeData(t, rec, &info)
		assert.True(t, info.Fallback)
		assert.Equal(t, "PAID", info.Status)
	})

	for _, code := range []string{"abc", "0", "-5"} {
		t.Run("invalid order code "+code, func(t *testing.T) {
			h, _ := newTestPaymentHandler(t)

			rec := serve(t, h.GetInfo, testRequest{
				method: http.MethodGet,
				target: "/api/payments/" + code,
				params: map[string]string{"orderCode": code},
				actor:  asBuyer(),
			})

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}

	t.Run("gateway failure", func(t *testing.T) {
		h, paymentUC := newTestPaymentHandler(t)
		paymentUC.EXPECT().GetPaymentInfo(mock.Anything, mock.Anything, int64(42)).
			Return(nil, domainerrors.ErrPaymentGatewayFailed.WithDetails("timeout")).Once()

		rec := serve(t, h.GetInfo, testRequest{
			method: http.MethodGet,
			target: "/api/payments/42",
			params: map[string]string{"orderCode": "42"},
			actor:  asBuyer(),
		})

		requireErrorCode(t, rec, http.StatusBadGateway, "PAYMENT_GATEWAY_FAILED")
	})
}

func TestPaymentHandler_CancelLink(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		h, paymentUC := newTestPaymentHandler(t)
		paymentUC.EXPECT().CancelPaymentLink(mock.Anything, *asBuyer(), int64(42), "changed my mind").
			Return(&service.PaymentInfo{OrderCode: 42, Status: "CANCELLED"}, nil).Once()

		rec := serve(t, h.CancelLink, testRequest{
			method: http.MethodPost,
			target: "/api/payments/42/cancel",
			body:   `{"reason":"changed my mind"}`,
			params: map[string]string{"orderCode": "42"},
			actor:  asBuyer(),
		})

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("without body", func(t *testing.T) {
		h, paymentUC := newTestPaymentHandler(t)
		paymentUC.EXPECT().CancelPaymentLink(mock.Anything, *asBuyer(), int64(42), "").
			Return(&service.PaymentInfo{OrderCode: 42, Status: "CANCELLED"}, nil).Once()

		rec := serve(t, h.CancelLink, testRequest{
			method: http.MethodPost,
			target: "/api/payments/42/cancel",
			params: map[string]string{"orderCode": "42"},
			actor:  asBuyer(),
		})

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPaymentHandler_GetQR(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}

	h, paymentUC := newTestPaymentHandler(t)
	paymentUC.EXPECT().GetCheckoutQR(mock.Anything, *asBuyer(), int64(42)).Return(png, nil).Once()

	rec := serve(t, h.GetQR, testRequest{
		method: http.MethodGet,
		target: "/api/payments/42/qr",
		params: map[string]string{"orderCode": "42"},
		actor:  asBuyer(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
