package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// CancelOrderInput carries the customer's stated reason for cancelling.
type CancelOrderInput struct {
	Reason string
}

// UpdateOrderStatusInput defines a merchant's status change request.
// RejectReason is required when Status is a rejection status.
type UpdateOrderStatusInput struct {
	Status       entity.OrderStatus
	RejectReason string
}

// --- Output DTOs ---

// OrderResponse is the API view of one order.
type OrderResponse struct {
	OrderID      uuid.UUID          `json:"orderId"`
	ProductID    uuid.UUID          `json:"productId"`
	ProductName  string             `json:"productName"`
	Count        int                `json:"count"`
	TotalAmount  float64            `json:"totalAmount"`
	Status       entity.OrderStatus `json:"status"`
	RejectReason string             `json:"rejectReason,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// OrderUsecase defines the interface for the order lifecycle.
// Checkout converts the customer's cart into orders atomically. Cancel is
// the customer-side rejection; UpdateStatus is the merchant-side transition.
type OrderUsecase interface {
	Checkout(ctx context.Context, customerID uuid.UUID) ([]*OrderResponse, error)
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*OrderResponse, error)
	CancelOrder(ctx context.Context, customerID, orderID uuid.UUID, input *CancelOrderInput) (*OrderResponse, error)
	ListMerchantOrders(ctx context.Context, merchantID uuid.UUID) ([]*OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, merchantID, orderID uuid.UUID, input *UpdateOrderStatusInput) (*OrderResponse, error)
}
