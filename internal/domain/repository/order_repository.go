package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order snapshot.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves a single order with its product populated.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrdersByCustomer retrieves a customer's orders, newest first,
	// with products populated.
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// ListOrdersForMerchant retrieves orders placed on the merchant's
	// products, hiding orders the customer already cancelled.
	ListOrdersForMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus sets the status and reject reason of an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, rejectReason string) error

	// ExistsOrderForProduct reports whether any order references the product.
	ExistsOrderForProduct(ctx context.Context, productID uuid.UUID) (bool, error)
}
