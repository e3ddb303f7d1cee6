package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to add a product to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	Count     int
}

// CartItemResponse is one cart line priced at the product's current price.
type CartItemResponse struct {
	ItemID       uuid.UUID `json:"itemId"`
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	Count        int       `json:"count"`
	PricePerUnit float64   `json:"pricePerUnit"`
	TotalPrice   float64   `json:"totalPrice"`
}

// CartResponse is the customer's full cart with a grand total.
type CartResponse struct {
	Items      []*CartItemResponse `json:"items"`
	TotalPrice float64             `json:"totalPrice"`
}

// CartUsecase defines the interface for cart operations. All operations act
// on the calling customer's own cart.
type CartUsecase interface {
	GetCart(ctx context.Context, customerID uuid.UUID) (*CartResponse, error)
	AddItem(ctx context.Context, customerID uuid.UUID, input *AddCartItemInput) (*CartResponse, error)
	RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error
}
