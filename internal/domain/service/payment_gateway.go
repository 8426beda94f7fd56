package service

import (
	"context"
	"time"
)

// PaymentItem is a line sent with a payment link request.
type PaymentItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// PaymentLinkRequest is what the marketplace asks the gateway to collect.
type PaymentLinkRequest struct {
	OrderCode   int64
	Amount      int64
	Description string
	BuyerName   string
	Items       []PaymentItem
	CancelURL   string
	ReturnURL   string
}

// PaymentLink is the gateway's answer to a payment link request.
type PaymentLink struct {
	PaymentLinkID string
	OrderCode     int64
	Amount        int64
	Description   string
	Status        string
	CheckoutURL   string
	QRCode        string
}

// PaymentInfo is the state of a payment request.
//
// Fallback is true when the data was synthesized from the local order
// because the gateway could not be reached; it is best effort only.
type PaymentInfo struct {
	PaymentLinkID string
	OrderCode     int64
	Amount        int64
	AmountPaid    int64
	Status        string
	CreatedAt     time.Time
	Fallback      bool
}

// WebhookData is the verified content of a payment webhook.
type WebhookData struct {
	OrderCode           int64
	Amount              int64
	Status              string
	Code                string
	Description         string
	Reference           string
	TransactionDateTime string
	PaymentLinkID       string
}

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req *PaymentLinkRequest) (*PaymentLink, error)
	GetPaymentInfo(ctx context.Context, orderCode int64) (*PaymentInfo, error)
	CancelPaymentLink(ctx context.Context, orderCode int64, reason string) (*PaymentInfo, error)

	// VerifySignature checks signature against the canonical form of data.
	VerifySignature(data map[string]any, signature string) bool
}

// GatewayError is a well-formed gateway answer whose code is not the success code.
type GatewayError struct {
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	return "payment gateway error " + e.Code + ": " + e.Description
}
