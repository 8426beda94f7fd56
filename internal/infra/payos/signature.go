package payos

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"marketplace/internal/domain/service"
)

// PaymentRequestSignatureData returns the string signed for a payment link
// request. The field order is fixed by the gateway.
func PaymentRequestSignatureData(req *service.PaymentLinkRequest) string {
	return fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		req.Amount, req.CancelURL, req.Description, req.OrderCode, req.ReturnURL)
}

// SignPaymentRequest signs a payment link request with the checksum key.
func SignPaymentRequest(checksumKey string, req *service.PaymentLinkRequest) string {
	return Sign(checksumKey, PaymentRequestSignatureData(req))
}

// Sign returns the lowercase hex HMAC-SHA256 of message.
func Sign(checksumKey, message string) string {
	mac := hmac.New(sha256.New, []byte(checksumKey))
	mac.Write([]byte(message))

	return hex.EncodeToString(mac.Sum(nil))
}

// SignData signs a webhook or response data object. Keys are sorted and
// joined as key=value pairs with '&'.
func SignData(checksumKey string, data map[string]any) string {
	return Sign(checksumKey, CanonicalData(data))
}

// VerifyData reports whether signature is the signature of data.
func VerifyData(checksumKey string, data map[string]any, signature string) bool {
	if signature == "" {
		return false
	}
	expected := SignData(checksumKey, data)

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// CanonicalData renders data in the form the gateway signs.
func CanonicalData(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(formatValue(data[k]))
	}

	return sb.String()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}

		return string(raw)
	}
}
