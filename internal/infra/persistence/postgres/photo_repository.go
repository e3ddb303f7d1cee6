package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productPhotoRepository implements the repository.ProductPhotoRepository interface.
type productPhotoRepository struct {
	db *gorm.DB
}

// NewProductPhotoRepository is the constructor for productPhotoRepository.
func NewProductPhotoRepository(db *gorm.DB) repository.ProductPhotoRepository {
	return &productPhotoRepository{
		db: db,
	}
}

// CreatePhoto persists a new photo payload for a product.
func (repo *productPhotoRepository) CreatePhoto(ctx context.Context, photo *entity.ProductPhoto) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product photo")
	}

	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindPhotoByID retrieves a single photo including its binary payload.
func (repo *productPhotoRepository) FindPhotoByID(ctx context.Context, id uuid.UUID) (*entity.ProductPhoto, error) {
	var photoM model.ProductPhotoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&photoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find product photo by ID")
	}

	return toPhotoDomain(&photoM), nil
}

// --- Mapper Functions ---

func toPhotoDomain(data *model.ProductPhotoModel) *entity.ProductPhoto {
	if data == nil {
		return nil
	}

	return &entity.ProductPhoto{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Data:        data.Data,
		ContentType: data.ContentType,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPhotoDomain(data *entity.ProductPhoto) *model.ProductPhotoModel {
	if data == nil {
		return nil
	}

	return &model.ProductPhotoModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Data:        data.Data,
		ContentType: data.ContentType,
	}
}
