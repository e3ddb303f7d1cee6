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

func newProductServiceForTest(t *testing.T) (*productService, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository, *mockRepo.MockOrderRepository) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo:  mockProductRepo,
		CategoryRepo: mockCategoryRepo,
		OrderRepo:    mockOrderRepo,
		Logger:       testLogger(),
	})

	return service.(*productService), mockProductRepo, mockCategoryRepo, mockOrderRepo
}

func TestProductService_GetProduct_NewFlag(t *testing.T) {
	service, mockProductRepo, _, _ := newProductServiceForTest(t)

	fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	ctx := context.Background()
	productID := uuid.New()

	tests := []struct {
		name      string
		createdAt time.Time
		wantIsNew bool
	}{
		{"listed an hour ago", fixedNow.Add(-time.Hour), true},
		{"just inside the window", fixedNow.Add(-72*time.Hour + time.Minute), true},
		{"exactly at the window", fixedNow.Add(-72 * time.Hour), false},
		{"listed last month", fixedNow.AddDate(0, -1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProductRepo.EXPECT().
				FindProductByID(ctx, productID).
				Return(&entity.Product{
					ID:        productID,
					Name:      "Widget",
					Price:     9.99,
					CreatedAt: tt.createdAt,
				}, nil).
				Once()

			resp, err := service.GetProduct(ctx, productID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIsNew, resp.IsNew)
		})
	}
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	service, mockProductRepo, _, _ := newProductServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.GetProduct(ctx, productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	service, mockProductRepo, mockCategoryRepo, _ := newProductServiceForTest(t)

	ctx := context.Background()
	merchantID := uuid.New()
	categoryID := uuid.New()

	mockCategoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Electronics"}, nil)

	mockProductRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			assert.Equal(t, merchantID, product.MerchantID)
			product.ID = uuid.New()

			return nil
		})

	mockProductRepo.EXPECT().
		FindProductByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Product, error) {
			return &entity.Product{
				ID:         id,
				Name:       "Widget",
				Price:      9.99,
				StockCount: 5,
				CategoryID: categoryID,
				MerchantID: merchantID,
				CreatedAt:  time.Now(),
				Category:   &entity.Category{ID: categoryID, Name: "Electronics"},
			}, nil
		})

	resp, err := service.CreateProduct(ctx, merchantID, &usecase.CreateProductInput{
		Name:       "Widget",
		Price:      9.99,
		StockCount: 5,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, "Electronics", resp.CategoryName)
	assert.True(t, resp.IsNew)
	assert.NotNil(t, resp.PhotoIDs)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	service, _, mockCategoryRepo, _ := newProductServiceForTest(t)

	ctx := context.Background()
	categoryID := uuid.New()

	mockCategoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := service.CreateProduct(ctx, uuid.New(), &usecase.CreateProductInput{
		Name:       "Widget",
		Price:      9.99,
		StockCount: 5,
		CategoryID: categoryID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_CreateProduct_InvalidInput(t *testing.T) {
	service, _, _, _ := newProductServiceForTest(t)

	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateProductInput
	}{
		{"blank name", &usecase.CreateProductInput{Name: "  ", Price: 9.99, StockCount: 1, CategoryID: uuid.New()}},
		{"zero price", &usecase.CreateProductInput{Name: "Widget", Price: 0, StockCount: 1, CategoryID: uuid.New()}},
		{"negative price", &usecase.CreateProductInput{Name: "Widget", Price: -1, StockCount: 1, CategoryID: uuid.New()}},
		{"negative stock", &usecase.CreateProductInput{Name: "Widget", Price: 9.99, StockCount: -1, CategoryID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateProduct(ctx, uuid.New(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProductService_UpdateProduct_OwnershipViolation(t *testing.T) {
	service, mockProductRepo, _, _ := newProductServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()
	ownerID := uuid.New()
	intruderID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{
			ID:         productID,
			Name:       "Widget",
			Price:      9.99,
			MerchantID: ownerID,
		}, nil)

	_, err := service.UpdateProduct(ctx, intruderID, productID, &usecase.UpdateProductInput{
		Name:       "Widget v2",
		Price:      19.99,
		StockCount: 3,
		CategoryID: uuid.New(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	service, mockProductRepo, _, mockOrderRepo := newProductServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()
	merchantID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, MerchantID: merchantID}, nil)

	mockOrderRepo.EXPECT().
		ExistsOrderForProduct(ctx, productID).
		Return(false, nil)

	mockProductRepo.EXPECT().
		DeleteProduct(ctx, productID).
		Return(nil)

	err := service.DeleteProduct(ctx, merchantID, productID)
	require.NoError(t, err)
}

func TestProductService_DeleteProduct_BlockedByOrders(t *testing.T) {
	service, mockProductRepo, _, mockOrderRepo := newProductServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()
	merchantID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, MerchantID: merchantID}, nil)

	mockOrderRepo.EXPECT().
		ExistsOrderForProduct(ctx, productID).
		Return(true, nil)

	err := service.DeleteProduct(ctx, merchantID, productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductHasOrders)
}
