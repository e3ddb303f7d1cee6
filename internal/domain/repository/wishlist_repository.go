package repository

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWishlistItemNotFound is returned when a wishlist entry is not found.
var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// WishlistRepository defines the operations for wishlist persistence.
type WishlistRepository interface {
	// ListByCustomer retrieves a customer's wishlist entries, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.WishlistItem, error)

	// FindByCustomerAndProduct retrieves the entry for a (customer, product) pair.
	FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*entity.WishlistItem, error)

	// CreateWishlistItem persists a new wishlist entry.
	CreateWishlistItem(ctx context.Context, item *entity.WishlistItem) error

	// DeleteWishlistItem removes a wishlist entry.
	DeleteWishlistItem(ctx context.Context, id uuid.UUID) error

	// ListCreatedBefore retrieves every entry created strictly before the
	// cutoff, used by the daily reminder sweep.
	ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]*entity.WishlistItem, error)
}
