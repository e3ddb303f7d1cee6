package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCartNotFound is returned when no cart exists for a user.
	ErrCartNotFound = errors.New("cart not found")

	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the operations for cart persistence. A cart is
// created once per customer at registration; items are upserted by the
// service layer through the find/create/update triple below.
type CartRepository interface {
	// CreateCart persists the empty cart created at customer registration.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// FindCartByUserID retrieves a customer's cart together with its items.
	FindCartByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindCartItemByID retrieves a single cart item by its unique ID.
	FindCartItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// FindCartItemByCartAndProduct retrieves the item for a (cart, product) pair.
	FindCartItemByCartAndProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error)

	// CreateCartItem persists a new cart line.
	CreateCartItem(ctx context.Context, item *entity.CartItem) error

	// UpdateCartItemCount sets the quantity of an existing cart line.
	UpdateCartItemCount(ctx context.Context, id uuid.UUID, count int) error

	// DeleteCartItem removes a single cart line.
	DeleteCartItem(ctx context.Context, id uuid.UUID) error

	// DeleteCartItemsByCartID empties a cart, used when checkout completes.
	DeleteCartItemsByCartID(ctx context.Context, cartID uuid.UUID) error
}
