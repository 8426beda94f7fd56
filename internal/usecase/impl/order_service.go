package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	// orderCodeAttempts bounds checkout retries after an order code collision.
	orderCodeAttempts = 3

	defaultPageSize = 20
	maxPageSize     = 100
)

// orderStatusByRole lists the statuses each staff role may move an order to.
// Paid is reserved for the payment webhook.
var orderStatusByRole = map[entity.Role][]entity.OrderStatus{
	entity.RoleSeller:  {entity.OrderStatusConfirmed, entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.RoleShipper: {entity.OrderStatusShipping, entity.OrderStatusDelivered},
	entity.RoleAdmin: {
		entity.OrderStatusConfirmed, entity.OrderStatusPreparing, entity.OrderStatusShipping,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled,
	},
}

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	shopRepo  repository.ShopRepository
	logger    *slog.Logger
	now       func() time.Time
	newCode   func(now time.Time) int64
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	ShopRepo  repository.ShopRepository
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		shopRepo:  params.ShopRepo,
		logger:    params.Logger,
		now:       time.Now,
		newCode:   newOrderCode,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// newOrderCode derives the numeric code shared with the payment gateway from
// the checkout time. It stays below 2^53 so JSON clients read it exactly.
func newOrderCode(now time.Time) int64 {
	return now.UnixMilli()*1000 + rand.Int64N(1000)
}

// Checkout turns the user's cart into a pending order. The optional voucher
// is redeemed and the cart emptied in the same transaction.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, input usecase.CheckoutInput) (*entity.Order, error) {
	var (
		order *entity.Order
		err   error
	)
	for attempt := 1; attempt <= orderCodeAttempts; attempt++ {
		order, err = s.checkout(ctx, userID, input)
		if !errors.Is(err, repository.ErrOrderCodeConflict) {
			break
		}
		s.log(ctx).Warn("Order code collision, retrying checkout", slog.Int("attempt", attempt))
	}
	if errors.Is(err, repository.ErrOrderCodeConflict) {
		return nil, domainerrors.ErrOrderCodeConflict
	}
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.Int64("code", order.Code),
		slog.String("total", order.Total.String()),
	)

	return order, nil
}

// ensureNotBanned refuses purchases by a banned account. Banned users can
// still read their data and file an appeal.
func ensureNotBanned(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) error {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}
	if user.IsBanned {
		return domainerrors.ErrUserBanned
	}

	return nil
}

func (s *orderService) checkout(ctx context.Context, userID uuid.UUID, input usecase.CheckoutInput) (*entity.Order, error) {
	var order *entity.Order
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := ensureNotBanned(ctx, txRepoFactory.NewUserRepository(), userID); err != nil {
			return err
		}

		cartRepo := txRepoFactory.NewCartRepository()
		now := s.now()

		cart, err := cartRepo.FindCartByUserForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartEmpty
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart")
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrCartEmpty
		}

		shopIDs := cart.ShopIDs()
		if len(shopIDs) > 1 {
			return domainerrors.ErrCartMultipleShops
		}
		shop, err := txRepoFactory.NewShopRepository().FindShopByID(ctx, shopIDs[0])
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound.WrapMessage("failed to check out cart")
			}

			return errors.Wrap(err, "failed to find shop")
		}
		if shop.IsBanned {
			return domainerrors.ErrShopBanned.WrapMessage("failed to check out cart")
		}

		order = newOrderFromCart(cart, shop.ID, input, now)
		order.Code = s.newCode(now)

		var (
			voucherRepo repository.VoucherRepository
			voucher     *entity.Voucher
			claim       *entity.UserVoucher
		)
		if input.VoucherCode != "" {
			voucherRepo = txRepoFactory.NewVoucherRepository()
			voucher, err = findValidVoucher(ctx, voucherRepo, input.VoucherCode, now)
			if err != nil {
				return err
			}
			claim, err = findUnusedClaim(ctx, voucherRepo, userID, voucher)
			if err != nil {
				return err
			}

			discount := voucher.CalculateDiscount(order.Subtotal)
			if discount.IsZero() {
				return domainerrors.ErrVoucherNotApplicable.WithDetails(
					"minimum order value is " + voucher.MinOrderValue.String(),
				)
			}
			order.Discount = discount
			order.Total = order.Subtotal.Sub(discount)
			order.VoucherID = &voucher.ID
		}

		if err := txRepoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			if errors.Is(err, repository.ErrOrderCodeConflict) {
				return err
			}

			return errors.Wrap(err, "failed to create order")
		}

		if voucher != nil {
			if err := redeemClaim(ctx, voucherRepo, voucher, claim, order.ID, now); err != nil {
				return err
			}
		}

		return clearCart(ctx, cartRepo, cart, now)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func newOrderFromCart(cart *entity.Cart, shopID uuid.UUID, input usecase.CheckoutInput, now time.Time) *entity.Order {
	order := &entity.Order{
		ID:              uuid.New(),
		BuyerID:         cart.UserID,
		ShopID:          shopID,
		Status:          entity.OrderStatusPending,
		Discount:        decimal.Zero,
		Notes:           input.Notes,
		DeliveryAddress: input.DeliveryAddress,
		Items:           make([]*entity.OrderItem, 0, len(cart.Items)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, line := range cart.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	order.Subtotal = cart.Total()
	order.Total = order.Subtotal

	return order
}

// GetOrder returns the order to its buyer, the selling shop's owner, shippers and admins
func (s *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err)
	}

	if err := s.authorizeOrderAccess(ctx, s.shopRepo, actor, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) authorizeOrderAccess(ctx context.Context, shopRepo repository.ShopRepository, actor usecase.Actor, order *entity.Order) error {
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleShipper:
		return nil
	case entity.RoleSeller:
		if order.BuyerID == actor.UserID {
			return nil
		}

		return s.authorizeShopOwner(ctx, shopRepo, actor.UserID, order.ShopID)
	default:
		if order.BuyerID != actor.UserID {
			return domainerrors.ErrForbidden.WithDetails("order belongs to another user")
		}

		return nil
	}
}

func (s *orderService) authorizeShopOwner(ctx context.Context, shopRepo repository.ShopRepository, ownerID, shopID uuid.UUID) error {
	shop, err := shopRepo.FindShopByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return domainerrors.ErrForbidden.WithDetails("seller has no shop")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find seller shop")
	}
	if shop.ID != shopID {
		return domainerrors.ErrForbidden.WithDetails("order belongs to another shop")
	}

	return nil
}

// ListMyOrders lists the user's orders, newest first
func (s *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	limit, offset = normalizePage(limit, offset)

	orders, err := s.orderRepo.ListOrdersByBuyer(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// UpdateStatus moves the order to status if the actor's role and the order lifecycle allow it
func (s *orderService) UpdateStatus(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(status))
	}
	if !slices.Contains(orderStatusByRole[actor.Role], status) {
		return nil, domainerrors.ErrForbidden.WithDetails("role " + actor.Role.String() + " cannot set order status " + string(status))
	}

	var order *entity.Order
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err)
		}

		if actor.Role == entity.RoleSeller {
			if err := s.authorizeShopOwner(ctx, txRepoFactory.NewShopRepository(), actor.UserID, order.ShopID); err != nil {
				return err
			}
		}

		return transitionOrder(ctx, orderRepo, order, status, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Order status updated",
		slog.String("orderID", orderID.String()),
		slog.String("status", string(status)),
		slog.String("actorID", actor.UserID.String()),
	)

	return order, nil
}

// CancelOrder cancels a pending order of the buyer
func (s *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return mapOrderError(err)
		}
		if order.BuyerID != userID {
			return domainerrors.ErrForbidden.WithDetails("order belongs to another user")
		}
		if order.Status != entity.OrderStatusPending {
			return domainerrors.ErrInvalidOrderTransition.WithDetails("only pending orders can be cancelled by the buyer")
		}

		return transitionOrder(ctx, orderRepo, order, entity.OrderStatusCancelled, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Order cancelled by buyer", slog.String("orderID", orderID.String()))

	return order, nil
}

// transitionOrder applies a guarded status change and saves the order.
func transitionOrder(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order, next entity.OrderStatus, now time.Time) error {
	if !order.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidOrderTransition.WithDetails(string(order.Status) + " -> " + string(next))
	}

	order.Status = next
	order.UpdatedAt = now
	if err := orderRepo.UpdateOrder(ctx, order); err != nil {
		return errors.Wrap(err, "failed to update order")
	}

	return nil
}

func mapOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	return errors.Wrap(err, "failed to find order")
}
