// Package payos implements the payment gateway client.
package payos

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/fx"
)

const (
	maxResponseBytes = 1 << 20

	resultSuccess  = "success"
	resultRejected = "rejected"
	resultFailure  = "failure"

	defaultTimeout = 10 * time.Second
)

// Params defines the dependencies of the gateway client.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.MetricsRecorder
}

// Client talks to the payment gateway REST API.
type Client struct {
	cfg        config.PaymentConfig
	httpClient *http.Client
	logger     *slog.Logger
	metrics    service.MetricsRecorder
	retryDelay func() backoff.BackOff
}

// New is the fx constructor for the payment gateway.
func New(params Params) service.PaymentGateway {
	return NewClient(params.Config.Payment, params.Logger, params.Metrics)
}

// NewClient creates a gateway client from the payment configuration.
func NewClient(cfg *config.PaymentConfig, logger *slog.Logger, metrics service.MetricsRecorder) *Client {
	c := *cfg
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	client := &Client{
		cfg:        c,
		httpClient: &http.Client{},
		logger:     logger,
		metrics:    metrics,
	}
	client.retryDelay = client.exponentialDelay

	return client
}

// exponentialDelay doubles from RetryBackoff with jitter. The attempt count
// is bounded separately by MaxRetries.
func (c *Client) exponentialDelay() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.RetryBackoff
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	b.Reset()

	return b
}

type apiResponse struct {
	Code      string          `json:"code"`
	Desc      string          `json:"desc"`
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
}

type createPaymentBody struct {
	OrderCode   int64                 `json:"orderCode"`
	Amount      int64                 `json:"amount"`
	Description string                `json:"description"`
	BuyerName   string                `json:"buyerName,omitempty"`
	Items       []service.PaymentItem `json:"items,omitempty"`
	CancelURL   string                `json:"cancelUrl"`
	ReturnURL   string                `json:"returnUrl"`
	Signature   string                `json:"signature"`
}

type paymentLinkData struct {
	PaymentLinkID string `json:"paymentLinkId"`
	OrderCode     int64  `json:"orderCode"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	CheckoutURL   string `json:"checkoutUrl"`
	QRCode        string `json:"qrCode"`
}

type paymentInfoData struct {
	ID         string `json:"id"`
	OrderCode  int64  `json:"orderCode"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amountPaid"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// CreatePaymentLink signs the request and creates a payment link.
func (c *Client) CreatePaymentLink(ctx context.Context, req *service.PaymentLinkRequest) (*service.PaymentLink, error) {
	body := createPaymentBody{
		OrderCode:   req.OrderCode,
		Amount:      req.Amount,
		Description: req.Description,
		BuyerName:   req.BuyerName,
		Items:       req.Items,
		CancelURL:   req.CancelURL,
		ReturnURL:   req.ReturnURL,
		Signature:   SignPaymentRequest(c.cfg.ChecksumKey, req),
	}

	var data paymentLinkData
	if err := c.do(ctx, "create_payment_link", http.MethodPost, "/v2/payment-requests", body, &data); err != nil {
		return nil, err
	}

	return &service.PaymentLink{
		PaymentLinkID: data.PaymentLinkID,
		OrderCode:     data.OrderCode,
		Amount:        data.Amount,
		Description:   data.Description,
		Status:        data.Status,
		CheckoutURL:   data.CheckoutURL,
		QRCode:        data.QRCode,
	}, nil
}

// GetPaymentInfo fetches the state of the payment request for orderCode.
func (c *Client) GetPaymentInfo(ctx context.Context, orderCode int64) (*service.PaymentInfo, error) {
	var data paymentInfoData
	path := "/v2/payment-requests/" + strconv.FormatInt(orderCode, 10)
	if err := c.do(ctx, "get_payment_info", http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}

	return toPaymentInfo(&data), nil
}

// CancelPaymentLink cancels the payment request for orderCode.
func (c *Client) CancelPaymentLink(ctx context.Context, orderCode int64, reason string) (*service.PaymentInfo, error) {
	body := map[string]string{"cancellationReason": reason}

	var data paymentInfoData
	path := "/v2/payment-requests/" + strconv.FormatInt(orderCode, 10) + "/cancel"
	if err := c.do(ctx, "cancel_payment_link", http.MethodPost, path, body, &data); err != nil {
		return nil, err
	}

	return toPaymentInfo(&data), nil
}

// VerifySignature checks a webhook signature against the checksum key.
func (c *Client) VerifySignature(data map[string]any, signature string) bool {
	return VerifyData(c.cfg.ChecksumKey, data, signature)
}

// do sends the request, retrying transport errors and 5xx answers with
// exponential backoff up to MaxRetries times.
func (c *Client) do(ctx context.Context, operation, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode payment gateway request")
		}
		payload = raw
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.retryDelay(), uint64(c.cfg.MaxRetries)), ctx)

	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		retryable, err := c.attempt(ctx, method, path, payload, out)
		if err != nil && !retryable {
			return backoff.Permanent(err)
		}

		return err
	}, policy, func(err error, wait time.Duration) {
		c.logger.WarnContext(ctx, "Payment gateway request failed, retrying",
			slog.String("operation", operation),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", wait),
			slog.Any("error", err),
		)
	})
	if err == nil {
		c.metrics.GatewayCall(operation, resultSuccess)

		return nil
	}

	var gatewayErr *service.GatewayError
	if errors.As(err, &gatewayErr) {
		c.metrics.GatewayCall(operation, resultRejected)
	} else {
		c.metrics.GatewayCall(operation, resultFailure)
	}
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return errors.Wrap(err, "payment gateway retry aborted")
	}

	return err
}

func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out any) (retryable bool, err error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return false, errors.Wrap(err, "failed to build payment gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.cfg.ClientID)
	req.Header.Set("x-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The caller gave up; retrying cannot help.
		if ctx.Err() != nil {
			return false, errors.Wrap(err, "payment gateway request cancelled")
		}

		return true, errors.Wrap(err, "payment gateway request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return true, errors.Wrap(err, "failed to read payment gateway response")
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return true, errors.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return false, errors.Wrapf(err, "failed to decode payment gateway response (status %d)", resp.StatusCode)
	}

	if envelope.Code != constants.GatewaySuccessCode {
		return false, &service.GatewayError{Code: envelope.Code, Description: envelope.Desc}
	}

	if err := c.verifyResponse(&envelope); err != nil {
		return false, err
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return false, errors.Wrap(err, "failed to decode payment gateway data")
		}
	}

	return false, nil
}

// verifyResponse checks the signature of signed responses. Unsigned
// responses are accepted since not every endpoint signs its answer.
func (c *Client) verifyResponse(envelope *apiResponse) error {
	if envelope.Signature == "" || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}

	data, err := DecodeData(envelope.Data)
	if err != nil {
		return err
	}

	if !VerifyData(c.cfg.ChecksumKey, data, envelope.Signature) {
		return errors.New("payment gateway response signature mismatch")
	}

	return nil
}

// DecodeData decodes a JSON object keeping numbers in their textual form so
// they can be signed exactly as received.
func DecodeData(raw []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode signed data")
	}

	return data, nil
}

func toPaymentInfo(data *paymentInfoData) *service.PaymentInfo {
	info := &service.PaymentInfo{
		PaymentLinkID: data.ID,
		OrderCode:     data.OrderCode,
		Amount:        data.Amount,
		AmountPaid:    data.AmountPaid,
		Status:        data.Status,
	}
	if createdAt, err := time.Parse(time.RFC3339, data.CreatedAt); err == nil {
		info.CreatedAt = createdAt
	}

	return info
}
