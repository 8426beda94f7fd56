package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists the order and its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderCodeConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID retrieves an order and its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

// FindOrderByCode retrieves an order by its gateway order code.
func (repo *orderRepository) FindOrderByCode(ctx context.Context, code int64) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx), "code = ?", code)
}

// FindOrderByCodeForUpdate retrieves an order by code under a row lock.
func (repo *orderRepository) FindOrderByCodeForUpdate(ctx context.Context, code int64) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "code = ?", code)
}

// FindOrderByIDForUpdate retrieves an order by ID under a row lock.
func (repo *orderRepository) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id)
}

// FindOrderByPaymentReference finds the latest order whose notes mention reference.
func (repo *orderRepository) FindOrderByPaymentReference(ctx context.Context, reference string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("notes LIKE ?", "%"+escapeLike(reference)+"%").
		Order("created_at DESC").
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by payment reference")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrdersByBuyer lists a buyer's orders, newest first.
func (repo *orderRepository) ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by buyer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrder saves the mutable fields of an order.
func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":          string(order.Status),
			"notes":           order.Notes,
			"payment_link_id": order.PaymentLinkID,
			"checkout_url":    order.CheckoutURL,
			"transaction_id":  order.TransactionID,
			"paid_at":         order.PaidAt,
			"updated_at":      order.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) findOne(db *gorm.DB, query string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := db.Preload("Items").Where(query, arg).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:        itemM.ID,
			OrderID:   itemM.OrderID,
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		Code:            data.Code,
		BuyerID:         data.BuyerID,
		ShopID:          data.ShopID,
		Status:          entity.OrderStatus(data.Status),
		Subtotal:        data.Subtotal,
		Discount:        data.Discount,
		Total:           data.Total,
		Notes:           data.Notes,
		DeliveryAddress: data.DeliveryAddress,
		VoucherID:       data.VoucherID,
		PaymentLinkID:   data.PaymentLinkID,
		CheckoutURL:     data.CheckoutURL,
		TransactionID:   data.TransactionID,
		PaidAt:          data.PaidAt,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, &model.OrderItemModel{
			ID:        item.ID,
			OrderID:   data.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		Code:            data.Code,
		BuyerID:         data.BuyerID,
		ShopID:          data.ShopID,
		Status:          string(data.Status),
		Subtotal:        data.Subtotal,
		Discount:        data.Discount,
		Total:           data.Total,
		Notes:           data.Notes,
		DeliveryAddress: data.DeliveryAddress,
		VoucherID:       data.VoucherID,
		PaymentLinkID:   data.PaymentLinkID,
		CheckoutURL:     data.CheckoutURL,
		TransactionID:   data.TransactionID,
		PaidAt:          data.PaidAt,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
