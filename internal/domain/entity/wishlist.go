package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is one saved product for a customer. The (customer, product)
// pair is unique; saving the same product twice is a no-op. CreatedAt drives
// the daily reminder sweep.
type WishlistItem struct {
	ID         uuid.UUID
	CustomerID uuid.UUID // users.id of the owning customer.
	ProductID  uuid.UUID
	CreatedAt  time.Time
}
