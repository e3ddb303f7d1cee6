package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// List and find operations populate Category, Merchant and PhotoIDs on the
// returned entities so response assembly never triggers follow-up queries.
type ProductRepository interface {
	// ListProducts retrieves the whole catalog with relationships populated.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListProductsByMerchant retrieves all products owned by one merchant.
	ListProductsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error)

	// ListProductsByIDs retrieves the given products in one batched lookup.
	ListProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindProductByID retrieves a single product with relationships populated.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct persists a new product entity.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct modifies the mutable fields of an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product and its photos.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts count units from the product's
	// stock. It fails when the remaining stock does not cover the request.
	DecrementStock(ctx context.Context, id uuid.UUID, count int) error
}
