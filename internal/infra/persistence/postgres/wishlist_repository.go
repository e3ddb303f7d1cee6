package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// ListByCustomer retrieves a customer's wishlist entries, newest first.
func (repo *wishlistRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemModels []*model.WishlistItemModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items by customer")
	}

	return toWishlistDomainSlice(itemModels), nil
}

// FindByCustomerAndProduct retrieves the entry for a (customer, product) pair.
func (repo *wishlistRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*entity.WishlistItem, error) {
	var itemM model.WishlistItemModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist item by customer and product")
	}

	return toWishlistDomain(&itemM), nil
}

// CreateWishlistItem persists a new wishlist entry. A concurrent duplicate
// insert is treated as success since additions are idempotent.
func (repo *wishlistRepository) CreateWishlistItem(ctx context.Context, item *entity.WishlistItem) error {
	itemM := fromWishlistDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// DeleteWishlistItem removes a wishlist entry.
func (repo *wishlistRepository) DeleteWishlistItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WishlistItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete wishlist item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

// ListCreatedBefore retrieves every entry created strictly before the cutoff.
func (repo *wishlistRepository) ListCreatedBefore(ctx context.Context, cutoff time.Time) ([]*entity.WishlistItem, error) {
	var itemModels []*model.WishlistItemModel

	if err := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items created before cutoff")
	}

	return toWishlistDomainSlice(itemModels), nil
}

// --- Mapper Functions ---

func toWishlistDomain(data *model.WishlistItemModel) *entity.WishlistItem {
	if data == nil {
		return nil
	}

	return &entity.WishlistItem{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		ProductID:  data.ProductID,
		CreatedAt:  data.CreatedAt,
	}
}

func toWishlistDomainSlice(data []*model.WishlistItemModel) []*entity.WishlistItem {
	items := make([]*entity.WishlistItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toWishlistDomain(itemM))
	}

	return items
}

func fromWishlistDomain(data *entity.WishlistItem) *model.WishlistItemModel {
	if data == nil {
		return nil
	}

	return &model.WishlistItemModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		ProductID:  data.ProductID,
	}
}
