package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Webhook outcomes, used as the result label of the webhook counter.
const (
	webhookApplied          = "applied"
	webhookDuplicate        = "duplicate"
	webhookIgnored          = "ignored"
	webhookPartial          = "partial"
	webhookOrderNotFound    = "order_not_found"
	webhookAmountMismatch   = "amount_mismatch"
	webhookLatePayment      = "late_payment"
	webhookInvalidSignature = "invalid_signature"
	webhookInvalidPayload   = "invalid_payload"
	webhookError            = "error"
)

type paymentService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	gateway       service.PaymentGateway
	qrcode        service.QRCodeService
	metrics       service.MetricsRecorder
	returnURL     string
	cancelURL     string
	allowUnsigned bool
	logger        *slog.Logger
	now           func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	QRCode    service.QRCodeService
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	srv := &paymentService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		gateway:       params.Gateway,
		qrcode:        params.QRCode,
		metrics:       params.Metrics,
		allowUnsigned: params.Config.AllowsUnsignedWebhook(),
		logger:        params.Logger,
		now:           time.Now,
	}
	if params.Config.Payment != nil {
		srv.returnURL = params.Config.Payment.ReturnURL
		srv.cancelURL = params.Config.Payment.CancelURL
	}

	return srv
}

func (s *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// paymentReference is the marker written into order notes when a payment
// link is created. The local fallback lookup searches for it.
func paymentReference(orderCode int64) string {
	return fmt.Sprintf("[payment:%d]", orderCode)
}

// gatewayAmount converts an order total to the gateway's integer currency unit.
// It is both what the payment link charges and what a PAID webhook must cover.
func gatewayAmount(total decimal.Decimal) int64 {
	return total.Round(0).IntPart()
}

// CreatePaymentLink requests a checkout link for a pending order of the actor.
// An order that already has a link gets it back unchanged.
func (s *paymentService) CreatePaymentLink(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*service.PaymentLink, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err)
	}
	if order.BuyerID != actor.UserID {
		return nil, domainerrors.ErrForbidden.WithDetails("order belongs to another user")
	}
	if order.IsPaid() || order.Status != entity.OrderStatusPending {
		return nil, domainerrors.ErrOrderNotPayable.WithDetails("order is " + string(order.Status))
	}

	if order.PaymentLinkID != "" && order.CheckoutURL != "" {
		return &service.PaymentLink{
			PaymentLinkID: order.PaymentLinkID,
			OrderCode:     order.Code,
			Amount:        gatewayAmount(order.Total),
			Status:        constants.PaymentStatusPending,
			CheckoutURL:   order.CheckoutURL,
		}, nil
	}

	link, err := s.gateway.CreatePaymentLink(ctx, s.buildLinkRequest(order))
	if err != nil {
		s.log(ctx).Error("Payment link creation failed", slog.Int64("orderCode", order.Code), slog.Any("error", err))

		return nil, mapGatewayError(err)
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()

		locked, err := orderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err)
		}
		locked.PaymentLinkID = link.PaymentLinkID
		locked.CheckoutURL = link.CheckoutURL
		locked.Notes = appendPaymentReference(locked.Notes, locked.Code)
		locked.UpdatedAt = s.now()

		return errors.Wrap(orderRepo.UpdateOrder(ctx, locked), "failed to store payment link")
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Payment link created",
		slog.Int64("orderCode", order.Code),
		slog.String("paymentLinkID", link.PaymentLinkID),
	)

	return link, nil
}

func (s *paymentService) buildLinkRequest(order *entity.Order) *service.PaymentLinkRequest {
	items := make([]service.PaymentItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, service.PaymentItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    gatewayAmount(item.UnitPrice),
		})
	}

	return &service.PaymentLinkRequest{
		OrderCode:   order.Code,
		Amount:      gatewayAmount(order.Total),
		Description: fmt.Sprintf("DH%d", order.Code),
		Items:       items,
		CancelURL:   s.cancelURL,
		ReturnURL:   s.returnURL,
	}
}

func appendPaymentReference(notes string, orderCode int64) string {
	ref := paymentReference(orderCode)
	if strings.Contains(notes, ref) {
		return notes
	}
	if notes == "" {
		return ref
	}

	return notes + " " + ref
}

// mapGatewayError turns any gateway failure into the upstream-failure error,
// keeping the gateway's description as details.
func mapGatewayError(err error) error {
	var gwErr *service.GatewayError
	if errors.As(err, &gwErr) {
		return domainerrors.ErrPaymentGatewayFailed.WithDetails(gwErr.Description)
	}

	return domainerrors.ErrPaymentGatewayFailed.WithDetails(err.Error())
}

// GetPaymentInfo asks the gateway first. When the gateway fails the answer is
// synthesized from the local order and flagged as a fallback.
func (s *paymentService) GetPaymentInfo(ctx context.Context, actor usecase.Actor, orderCode int64) (*service.PaymentInfo, error) {
	order, err := s.orderRepo.FindOrderByCode(ctx, orderCode)
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		if !actor.IsAdmin() {
			return nil, domainerrors.ErrOrderNotFound
		}
		order = nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to find order")
	default:
		if err := authorizePayer(actor, order); err != nil {
			return nil, err
		}
	}

	info, gwErr := s.gateway.GetPaymentInfo(ctx, orderCode)
	if gwErr == nil {
		return info, nil
	}
	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "payment info request aborted")
	}

	s.log(ctx).Warn("Payment gateway unavailable, falling back to local order",
		slog.Int64("orderCode", orderCode),
		slog.Any("error", gwErr),
	)

	if order == nil {
		order, err = s.orderRepo.FindOrderByPaymentReference(ctx, paymentReference(orderCode))
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, mapGatewayError(gwErr)
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find order by payment reference")
		}
	}

	return fallbackPaymentInfo(order, orderCode), nil
}

// fallbackPaymentInfo is best effort: it only knows what the local order
// recorded and may lag behind the gateway.
func fallbackPaymentInfo(order *entity.Order, orderCode int64) *service.PaymentInfo {
	amount := gatewayAmount(order.Total)
	info := &service.PaymentInfo{
		PaymentLinkID: order.PaymentLinkID,
		OrderCode:     orderCode,
		Amount:        amount,
		Status:        constants.PaymentStatusPending,
		CreatedAt:     order.CreatedAt,
		Fallback:      true,
	}
	if order.IsPaid() || order.Status == entity.OrderStatusPaid {
		info.Status = constants.PaymentStatusPaid
		info.AmountPaid = amount
	}

	return info
}

func authorizePayer(actor usecase.Actor, order *entity.Order) error {
	if actor.IsAdmin() || order.BuyerID == actor.UserID {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails("order belongs to another user")
}

// CancelPaymentLink cancels the gateway link and the pending order
func (s *paymentService) CancelPaymentLink(ctx context.Context, actor usecase.Actor, orderCode int64, reason string) (*service.PaymentInfo, error) {
	order, err := s.orderRepo.FindOrderByCode(ctx, orderCode)
	if err != nil {
		return nil, mapOrderError(err)
	}
	if err := authorizePayer(actor, order); err != nil {
		return nil, err
	}
	if order.IsPaid() {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails("order is already paid")
	}
	if order.PaymentLinkID == "" {
		return nil, domainerrors.ErrPaymentLinkMissing
	}

	info, err := s.gateway.CancelPaymentLink(ctx, orderCode, reason)
	if err != nil {
		s.log(ctx).Error("Payment link cancellation failed", slog.Int64("orderCode", orderCode), slog.Any("error", err))

		return nil, mapGatewayError(err)
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()

		locked, err := orderRepo.FindOrderByCodeForUpdate(ctx, orderCode)
		if err != nil {
			return mapOrderError(err)
		}
		if locked.Status != entity.OrderStatusPending {
			return nil
		}

		return transitionOrder(ctx, orderRepo, locked, entity.OrderStatusCancelled, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Payment link cancelled", slog.Int64("orderCode", orderCode), slog.String("reason", reason))

	return info, nil
}

// GetCheckoutQR renders the order's checkout URL as a QR code PNG
func (s *paymentService) GetCheckoutQR(ctx context.Context, actor usecase.Actor, orderCode int64) ([]byte, error) {
	order, err := s.orderRepo.FindOrderByCode(ctx, orderCode)
	if err != nil {
		return nil, mapOrderError(err)
	}
	if err := authorizePayer(actor, order); err != nil {
		return nil, err
	}
	if order.CheckoutURL == "" {
		return nil, domainerrors.ErrPaymentLinkMissing
	}

	png, err := s.qrcode.GeneratePaymentQR(order.CheckoutURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render checkout QR code")
	}

	return png, nil
}

// HandleWebhook verifies a gateway callback and reconciles the order it
// names. Deliveries that cannot be applied are logged, counted and still
// acknowledged so the gateway stops retrying them.
func (s *paymentService) HandleWebhook(ctx context.Context, payload *usecase.WebhookPayload) (*usecase.WebhookResult, error) {
	if payload == nil || len(payload.Data) == 0 {
		s.metrics.WebhookProcessed(webhookInvalidPayload)

		return nil, domainerrors.ErrInvalidWebhookPayload.WithDetails("missing data object")
	}

	if !s.gateway.VerifySignature(payload.Data, payload.Signature) {
		if !s.allowUnsigned {
			s.metrics.WebhookProcessed(webhookInvalidSignature)
			s.log(ctx).Warn("Rejected payment webhook with invalid signature")

			return nil, domainerrors.ErrInvalidSignature
		}
		s.log(ctx).Warn("Accepting payment webhook with invalid signature in a test environment")
	}

	data := parseWebhookData(payload.Data)
	if data.OrderCode == 0 || data.Status == "" {
		s.metrics.WebhookProcessed(webhookPartial)
		s.log(ctx).Warn("Payment webhook without order code or status acknowledged",
			slog.Int64("orderCode", data.OrderCode),
			slog.String("status", data.Status),
			slog.String("code", data.Code),
		)

		return &usecase.WebhookResult{OrderCode: data.OrderCode, Status: data.Status, Outcome: webhookPartial}, nil
	}

	var result *usecase.WebhookResult
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var err error
		result, err = s.reconcile(ctx, txRepoFactory.NewOrderRepository(), data)

		return err
	})
	if err != nil {
		s.metrics.WebhookProcessed(webhookError)

		return nil, err
	}

	s.metrics.WebhookProcessed(result.Outcome)
	s.log(ctx).Info("Payment webhook processed",
		slog.Int64("orderCode", data.OrderCode),
		slog.String("status", data.Status),
		slog.String("outcome", result.Outcome),
		slog.String("reference", data.Reference),
	)

	return result, nil
}

// reconcile applies a webhook to the locked order. Redelivery of a payment
// already recorded leaves the order unchanged.
func (s *paymentService) reconcile(ctx context.Context, orderRepo repository.OrderRepository, data *service.WebhookData) (*usecase.WebhookResult, error) {
	result := &usecase.WebhookResult{OrderCode: data.OrderCode, Status: data.Status}

	order, err := orderRepo.FindOrderByCodeForUpdate(ctx, data.OrderCode)
	if errors.Is(err, repository.ErrOrderNotFound) {
		s.log(ctx).Warn("Payment webhook for unknown order", slog.Int64("orderCode", data.OrderCode))
		result.Outcome = webhookOrderNotFound

		return result, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock order")
	}

	now := s.now()
	switch data.Status {
	case constants.PaymentStatusPaid:
		result.Outcome, err = s.applyPayment(ctx, orderRepo, order, data, now)
	case constants.PaymentStatusCancelled, constants.PaymentStatusExpired:
		result.Outcome = webhookIgnored
		if order.Status == entity.OrderStatusPending {
			err = transitionOrder(ctx, orderRepo, order, entity.OrderStatusCancelled, now)
			result.Outcome = webhookApplied
		}
	default:
		result.Outcome = webhookIgnored
	}
	if err != nil {
		return nil, err
	}
	result.Applied = result.Outcome == webhookApplied

	return result, nil
}

func (s *paymentService) applyPayment(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	order *entity.Order,
	data *service.WebhookData,
	now time.Time,
) (string, error) {
	if order.IsPaid() {
		return webhookDuplicate, nil
	}

	if data.Amount < gatewayAmount(order.Total) {
		s.log(ctx).Error("Payment webhook amount below order total",
			slog.Int64("orderCode", order.Code),
			slog.Int64("amount", data.Amount),
			slog.String("total", order.Total.String()),
		)

		return webhookAmountMismatch, nil
	}

	if order.Status == entity.OrderStatusCancelled {
		s.log(ctx).Error("Payment received for cancelled order",
			slog.Int64("orderCode", order.Code),
			slog.String("reference", data.Reference),
		)

		return webhookLatePayment, nil
	}

	order.PaidAt = &now
	order.TransactionID = data.Reference
	if data.PaymentLinkID != "" {
		order.PaymentLinkID = data.PaymentLinkID
	}

	if order.Status == entity.OrderStatusPending {
		if err := transitionOrder(ctx, orderRepo, order, entity.OrderStatusPaid, now); err != nil {
			return "", err
		}

		return webhookApplied, nil
	}

	// Confirmed before payment arrived: record the payment, keep the status.
	order.UpdatedAt = now
	if err := orderRepo.UpdateOrder(ctx, order); err != nil {
		return "", errors.Wrap(err, "failed to record payment")
	}

	return webhookApplied, nil
}

// parseWebhookData extracts the fields the marketplace uses. A missing
// status is derived from the success code.
func parseWebhookData(raw map[string]any) *service.WebhookData {
	data := &service.WebhookData{
		OrderCode:           int64Field(raw["orderCode"]),
		Amount:              int64Field(raw["amount"]),
		Status:              stringField(raw["status"]),
		Code:                stringField(raw["code"]),
		Description:         stringField(raw["desc"]),
		Reference:           stringField(raw["reference"]),
		TransactionDateTime: stringField(raw["transactionDateTime"]),
		PaymentLinkID:       stringField(raw["paymentLinkId"]),
	}
	if data.Description == "" {
		data.Description = stringField(raw["description"])
	}
	if data.Status == "" && data.Code == constants.GatewaySuccessCode {
		data.Status = constants.PaymentStatusPaid
	}

	return data
}

func int64Field(v any) int64 {
	switch val := v.(type) {
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0
		}

		return n
	case float64:
		return int64(val)
	case int64:
		return val
	case int:
		return int64(val)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0
		}

		return n
	default:
		return 0
	}
}

func stringField(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
