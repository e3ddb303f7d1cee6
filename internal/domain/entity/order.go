package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusCreated is the initial state of every order.
	OrderStatusCreated OrderStatus = "CREATED"
	// OrderStatusAccepted means the merchant accepted the order.
	OrderStatusAccepted OrderStatus = "ACCEPTED"
	// OrderStatusDelivered is the successful terminal state.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusRejectByCustomer means the customer cancelled the order.
	OrderStatusRejectByCustomer OrderStatus = "REJECT_BY_CUSTOMER"
	// OrderStatusRejectByMerchant means the merchant rejected the order.
	OrderStatusRejectByMerchant OrderStatus = "REJECT_BY_MERCHANT"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusAccepted, OrderStatusDelivered,
		OrderStatusRejectByCustomer, OrderStatusRejectByMerchant:
		return true
	default:
		return false
	}
}

// RequiresReason reports whether the status must be accompanied by a reason.
func (s OrderStatus) RequiresReason() bool {
	return s == OrderStatusRejectByCustomer || s == OrderStatusRejectByMerchant
}

// CanTransitionTo reports whether an order in state s may move to next.
// CREATED advances to ACCEPTED, ACCEPTED to DELIVERED; either side may reject
// while the order is still CREATED or ACCEPTED. DELIVERED and the two reject
// states are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch next {
	case OrderStatusAccepted:
		return s == OrderStatusCreated
	case OrderStatusDelivered:
		return s == OrderStatusAccepted
	case OrderStatusRejectByCustomer, OrderStatusRejectByMerchant:
		return s == OrderStatusCreated || s == OrderStatusAccepted
	default:
		return false
	}
}

// Order is the immutable snapshot of a purchase taken at checkout time.
// TotalAmount freezes price multiplied by count; later price changes on the
// product do not affect it. Only Status and RejectReason mutate afterwards.
type Order struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID // users.id of the ordering customer.
	ProductID    uuid.UUID
	Count        int
	TotalAmount  float64
	Status       OrderStatus
	RejectReason string // Set only with the two REJECT_* states.
	CreatedAt    time.Time

	Product *Product // Populated on reads that need product data.
}
