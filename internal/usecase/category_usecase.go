package usecase

import (
	"context"

	"github.com/google/uuid"

	"marketplace/internal/domain/entity"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string
}

// CategoryUsecase defines the interface for category catalog operations.
// Listing is public; creation requires a merchant account.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, merchantID uuid.UUID, input *CreateCategoryInput) (*entity.Category, error)
}
