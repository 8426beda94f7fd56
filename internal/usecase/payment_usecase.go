package usecase

import (
	"context"

	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// WebhookPayload is the body the payment gateway posts to the webhook endpoint.
type WebhookPayload struct {
	Code      string         `json:"code"`
	Desc      string         `json:"desc"`
	Success   bool           `json:"success"`
	Data      map[string]any `json:"data"`
	Signature string         `json:"signature"`
}

// WebhookResult describes what a webhook delivery changed.
type WebhookResult struct {
	OrderCode int64
	Status    string
	// Applied is false when the delivery was acknowledged without changing an order.
	Applied bool
	Outcome string
}

// PaymentUsecase defines the interface for order payment use cases.
type PaymentUsecase interface {
	// CreatePaymentLink asks the gateway for a checkout link for a pending order of the actor.
	CreatePaymentLink(ctx context.Context, actor Actor, orderID uuid.UUID) (*service.PaymentLink, error)

	// GetPaymentInfo queries the gateway and falls back to the local order when the gateway fails.
	GetPaymentInfo(ctx context.Context, actor Actor, orderCode int64) (*service.PaymentInfo, error)

	// CancelPaymentLink cancels the gateway link and the pending order behind it.
	CancelPaymentLink(ctx context.Context, actor Actor, orderCode int64, reason string) (*service.PaymentInfo, error)

	// HandleWebhook verifies and reconciles a gateway callback.
	// Only signature and payload shape failures are returned as errors.
	HandleWebhook(ctx context.Context, payload *WebhookPayload) (*WebhookResult, error)

	// GetCheckoutQR renders the order's checkout link as a PNG QR code.
	GetCheckoutQR(ctx context.Context, actor Actor, orderCode int64) ([]byte, error)
}
