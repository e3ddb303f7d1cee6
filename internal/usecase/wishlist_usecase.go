package usecase

import (
	"context"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist operations. Entries are
// rendered as full product responses. Adding a product already on the
// wishlist returns the existing entry's product rather than an error.
type WishlistUsecase interface {
	GetWishlist(ctx context.Context, customerID uuid.UUID) ([]*ProductResponse, error)
	AddProduct(ctx context.Context, customerID, productID uuid.UUID) (*ProductResponse, error)
	RemoveProduct(ctx context.Context, customerID, productID uuid.UUID) error
}
