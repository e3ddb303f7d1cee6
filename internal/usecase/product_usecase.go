package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to publish a product.
type CreateProductInput struct {
	Name       string
	Details    string
	Price      float64
	StockCount int
	CategoryID uuid.UUID
}

// UpdateProductInput defines the data required to update a product.
type UpdateProductInput struct {
	Name       string
	Details    string
	Price      float64
	StockCount int
	CategoryID uuid.UUID
}

// --- Output DTOs ---

// ProductResponse is the catalog view of a product. Photo payloads are
// referenced by ID and fetched through the photo endpoint.
type ProductResponse struct {
	ID                  uuid.UUID   `json:"id"`
	Name                string      `json:"name"`
	Details             string      `json:"details"`
	Price               float64     `json:"price"`
	StockCount          int         `json:"stockCount"`
	CategoryID          uuid.UUID   `json:"categoryId"`
	CategoryName        string      `json:"categoryName"`
	MerchantID          uuid.UUID   `json:"merchantId"`
	MerchantCompanyName string      `json:"merchantCompanyName"`
	PhotoIDs            []uuid.UUID `json:"photoIds"`
	CreatedAt           time.Time   `json:"createdAt"`
	IsNew               bool        `json:"isNew"`
}

// ProductUsecase defines the interface for product catalog operations.
// Reads are public; writes require the owning merchant.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*ProductResponse, error)
	ListMerchantProducts(ctx context.Context, merchantID uuid.UUID) ([]*ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error)
	CreateProduct(ctx context.Context, merchantID uuid.UUID, input *CreateProductInput) (*ProductResponse, error)
	UpdateProduct(ctx context.Context, merchantID, productID uuid.UUID, input *UpdateProductInput) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, merchantID, productID uuid.UUID) error
}
