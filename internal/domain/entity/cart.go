package entity

import "github.com/google/uuid"

// Cart is the per-customer shopping cart, created together with the customer
// profile at registration. One cart exists per customer.
type Cart struct {
	ID     uuid.UUID
	UserID uuid.UUID // users.id of the owning customer, unique.
	Items  []*CartItem
}

// CartItem is one product line in a cart. The (cart, product) pair is unique;
// adding the same product again increments Count instead of inserting a row.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Count     int // Always at least 1.
}
