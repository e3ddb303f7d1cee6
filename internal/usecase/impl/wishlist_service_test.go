package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWishlistServiceForTest(t *testing.T) (usecase.WishlistUsecase, *mockRepo.MockWishlistRepository, *mockRepo.MockProductRepository) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewWishlistService(WishlistServiceParams{
		WishlistRepo: mockWishlistRepo,
		ProductRepo:  mockProductRepo,
		Logger:       testLogger(),
	})

	return service, mockWishlistRepo, mockProductRepo
}

func TestWishlistService_GetWishlist(t *testing.T) {
	service, mockWishlistRepo, mockProductRepo := newWishlistServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	deletedProductID := uuid.New()

	mockWishlistRepo.EXPECT().
		ListByCustomer(ctx, customerID).
		Return([]*entity.WishlistItem{
			{ID: uuid.New(), CustomerID: customerID, ProductID: productID, CreatedAt: time.Now().Add(-24 * time.Hour)},
			{ID: uuid.New(), CustomerID: customerID, ProductID: deletedProductID, CreatedAt: time.Now().Add(-48 * time.Hour)},
		}, nil)

	// The deleted product drops out of the view; the surviving one comes
	// back as a full product response.
	mockProductRepo.EXPECT().
		ListProductsByIDs(ctx, []uuid.UUID{productID, deletedProductID}).
		Return([]*entity.Product{
			{
				ID:        productID,
				Name:      "Widget",
				Price:     9.99,
				CreatedAt: time.Now().Add(-time.Hour),
				Category:  &entity.Category{ID: uuid.New(), Name: "Electronics"},
			},
		}, nil)

	products, err := service.GetWishlist(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 9.99, products[0].Price)
	assert.Equal(t, "Electronics", products[0].CategoryName)
	assert.True(t, products[0].IsNew)
}

func TestWishlistService_AddProduct_Success(t *testing.T) {
	service, mockWishlistRepo, mockProductRepo := newWishlistServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget", Price: 9.99}, nil)

	mockWishlistRepo.EXPECT().
		FindByCustomerAndProduct(ctx, customerID, productID).
		Return(nil, repository.ErrWishlistItemNotFound)

	mockWishlistRepo.EXPECT().
		CreateWishlistItem(ctx, mock.AnythingOfType("*entity.WishlistItem")).
		RunAndReturn(func(_ context.Context, item *entity.WishlistItem) error {
			assert.Equal(t, customerID, item.CustomerID)
			assert.Equal(t, productID, item.ProductID)

			return nil
		})

	product, err := service.AddProduct(ctx, customerID, productID)
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, "Widget", product.Name)
}

func TestWishlistService_AddProduct_AlreadySaved(t *testing.T) {
	service, mockWishlistRepo, mockProductRepo := newWishlistServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget"}, nil)

	// Re-adding must return the existing entry's product without creating
	// a second row.
	mockWishlistRepo.EXPECT().
		FindByCustomerAndProduct(ctx, customerID, productID).
		Return(&entity.WishlistItem{ID: uuid.New(), CustomerID: customerID, ProductID: productID}, nil)

	product, err := service.AddProduct(ctx, customerID, productID)
	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
}

func TestWishlistService_AddProduct_UnknownProduct(t *testing.T) {
	service, _, mockProductRepo := newWishlistServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.AddProduct(ctx, uuid.New(), productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_RemoveProduct_Success(t *testing.T) {
	service, mockWishlistRepo, mockProductRepo := newWishlistServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget"}, nil)

	mockWishlistRepo.EXPECT().
		FindByCustomerAndProduct(ctx, customerID, productID).
		Return(&entity.WishlistItem{ID: itemID, CustomerID: customerID, ProductID: productID}, nil)

	mockWishlistRepo.EXPECT().
		DeleteWishlistItem(ctx, itemID).
		Return(nil)

	err := service.RemoveProduct(ctx, customerID, productID)
	require.NoError(t, err)
}

func TestWishlistService_RemoveProduct_NotOnWishlist(t *testing.T) {
	service, mockWishlistRepo, mockProductRepo := newWishlistServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget"}, nil)

	mockWishlistRepo.EXPECT().
		FindByCustomerAndProduct(ctx, customerID, productID).
		Return(nil, repository.ErrWishlistItemNotFound)

	err := service.RemoveProduct(ctx, customerID, productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWishlistItemNotFound)
}
