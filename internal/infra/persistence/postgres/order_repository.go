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
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order snapshot.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindOrderByID retrieves a single order with its product populated.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrdersByCustomer retrieves a customer's orders, newest first.
func (repo *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	return toOrderDomainSlice(orderModels), nil
}

// ListOrdersForMerchant retrieves orders placed on the merchant's products.
// Orders the customer already cancelled are hidden from the merchant view.
func (repo *orderRepository) ListOrdersForMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.merchant_id = ? AND orders.status <> ?", merchantID, entity.OrderStatusRejectByCustomer.String()).
		Order("orders.created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders for merchant")
	}

	return toOrderDomainSlice(orderModels), nil
}

// UpdateOrderStatus sets the status and reject reason of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, rejectReason string) error {
	updates := map[string]any{
		"status": status.String(),
	}
	if rejectReason != "" {
		updates["reject_reason"] = rejectReason
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ExistsOrderForProduct reports whether any order references the product.
func (repo *orderRepository) ExistsOrderForProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count orders for product")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		ProductID:   data.ProductID,
		Count:       data.Count,
		TotalAmount: data.TotalAmount,
		Status:      entity.OrderStatus(data.Status),
		CreatedAt:   data.CreatedAt,
	}

	if data.RejectReason != nil {
		order.RejectReason = *data.RejectReason
	}
	if data.Product != nil {
		order.Product = toProductDomain(data.Product)
	}

	return order
}

func toOrderDomainSlice(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		ProductID:   data.ProductID,
		Count:       data.Count,
		TotalAmount: data.TotalAmount,
		Status:      data.Status.String(),
	}

	if data.RejectReason != "" {
		reason := data.RejectReason
		orderM.RejectReason = &reason
	}

	return orderM
}
