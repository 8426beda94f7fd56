package payos

import (
	"testing"

	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChecksumKey = "1a54716c8f0efb2744fb28b6e38b25da7f67a925d98bc1c18bd8faaecadd7675"

func TestSignPaymentRequest_MatchesReferenceDigest(t *testing.T) {
	req := &service.PaymentLinkRequest{
		Amount:      2000,
		CancelURL:   "https://a",
		Description: "d",
		OrderCode:   123,
		ReturnURL:   "https://b",
	}

	assert.Equal(t,
		"amount=2000&cancelUrl=https://a&description=d&orderCode=123&returnUrl=https://b",
		PaymentRequestSignatureData(req),
	)
	assert.Equal(t,
		"0a6d7d3257cd672765c3fccdce0b5f4814498f141dd2043af88d253abaee87c1",
		SignPaymentRequest(testChecksumKey, req),
	)
}

func TestSignPaymentRequest_DependsOnKey(t *testing.T) {
	req := &service.PaymentLinkRequest{Amount: 2000, CancelURL: "https://a", Description: "d", OrderCode: 123, ReturnURL: "https://b"}

	assert.NotEqual(t, SignPaymentRequest(testChecksumKey, req), SignPaymentRequest("other-key", req))
}

func TestVerifyData_WebhookPayload(t *testing.T) {
	data, err := DecodeData([]byte(`{
		"orderCode": 123,
		"amount": 50000,
		"description": "DH123",
		"reference": "FT123",
		"transactionDateTime": "2026-10-18 10:00:00",
		"code": "00",
		"desc": "success"
	}`))
	require.NoError(t, err)

	assert.Equal(t,
		"amount=50000&code=00&desc=success&description=DH123&orderCode=123&reference=FT123&transactionDateTime=2026-10-18 10:00:00",
		CanonicalData(data),
	)

	const signature = "fd9a7599edbfd9ba8f7ff0124edc395d4ae9b5f239b40d6f20bd8432290e6288"
	assert.True(t, VerifyData(testChecksumKey, data, signature))
	assert.True(t, VerifyData(testChecksumKey, data, "FD9A7599EDBFD9BA8F7FF0124EDC395D4AE9B5F239B40D6F20BD8432290E6288"))

	data["amount"] = "1"
	assert.False(t, VerifyData(testChecksumKey, data, signature))
}

func TestVerifyData_EmptySignatureRejected(t *testing.T) {
	assert.False(t, VerifyData(testChecksumKey, map[string]any{"orderCode": 1}, ""))
}

func TestCanonicalData_NullAndNested(t *testing.T) {
	data := map[string]any{
		"b":    nil,
		"a":    true,
		"list": []any{"x"},
	}

	assert.Equal(t, `a=true&b=&list=["x"]`, CanonicalData(data))
}
