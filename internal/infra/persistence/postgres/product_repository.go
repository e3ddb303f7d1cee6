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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// withRelations preloads the category, the merchant profile and the photo IDs.
// Photo rows are narrowed to their keys so listings never read binary data.
func (repo *productRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Merchant").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "product_id").Order("created_at ASC")
		})
}

// ListProducts retrieves the whole catalog, newest first.
func (repo *productRepository) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.withRelations(ctx).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productModels), nil
}

// ListProductsByMerchant retrieves all products owned by one merchant, newest first.
func (repo *productRepository) ListProductsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.withRelations(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by merchant")
	}

	return toProductDomainSlice(productModels), nil
}

// ListProductsByIDs retrieves the given products in one batched lookup.
func (repo *productRepository) ListProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.withRelations(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by IDs")
	}

	return toProductDomainSlice(productModels), nil
}

// FindProductByID retrieves a single product with relationships populated.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.withRelations(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// CreateProduct persists a new product entity.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct modifies the mutable fields of an existing product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"details":     product.Details,
			"price":       product.Price,
			"stock_count": product.StockCount,
			"category_id": product.CategoryID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product together with its photos.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&model.ProductPhotoModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete product photos")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock atomically subtracts count units from the product's stock.
// The guard in the WHERE clause makes concurrent checkouts safe without
// row locks: whoever lands second on insufficient stock affects zero rows.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock_count >= ?", id, count).
		Update("stock_count", gorm.Expr("stock_count - ?", count))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		Details:    data.Details,
		Price:      data.Price,
		StockCount: data.StockCount,
		CategoryID: data.CategoryID,
		MerchantID: data.MerchantID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Category != nil {
		product.Category = toCategoryDomain(data.Category)
	}
	if data.Merchant != nil {
		product.Merchant = &entity.MerchantProfile{
			UserID:      data.Merchant.UserID,
			CompanyName: data.Merchant.CompanyName,
			UpdatedAt:   data.Merchant.UpdatedAt,
		}
	}

	product.PhotoIDs = make([]uuid.UUID, 0, len(data.Photos))
	for _, photo := range data.Photos {
		product.PhotoIDs = append(product.PhotoIDs, photo.ID)
	}

	return product
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:         data.ID,
		Name:       data.Name,
		Details:    data.Details,
		Price:      data.Price,
		StockCount: data.StockCount,
		CategoryID: data.CategoryID,
		MerchantID: data.MerchantID,
	}
}
