package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPhotoNotFound is returned when a product photo is not found.
var ErrPhotoNotFound = errors.New("product photo not found")

// ProductPhotoRepository defines the operations for binary product photos.
type ProductPhotoRepository interface {
	// CreatePhoto persists a new photo payload for a product.
	CreatePhoto(ctx context.Context, photo *entity.ProductPhoto) error

	// FindPhotoByID retrieves a single photo including its binary payload.
	FindPhotoByID(ctx context.Context, id uuid.UUID) (*entity.ProductPhoto, error)
}
