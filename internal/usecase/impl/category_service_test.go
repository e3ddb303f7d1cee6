package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryServiceForTest(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository, *mockRepo.MockUserRepository) {
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)

	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: mockCategoryRepo,
		UserRepo:     mockUserRepo,
		Logger:       testLogger(),
	})

	return service, mockCategoryRepo, mockUserRepo
}

func TestCategoryService_ListCategories(t *testing.T) {
	service, mockCategoryRepo, _ := newCategoryServiceForTest(t)

	ctx := context.Background()

	mockCategoryRepo.EXPECT().
		ListCategories(ctx).
		Return([]*entity.Category{
			{ID: uuid.New(), Name: "Electronics"},
			{ID: uuid.New(), Name: "Books"},
		}, nil)

	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	service, mockCategoryRepo, mockUserRepo := newCategoryServiceForTest(t)

	ctx := context.Background()
	merchantID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, merchantID).
		Return(&entity.User{
			ID:   merchantID,
			Type: entity.UserTypeMerchant,
		}, nil)

	mockCategoryRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		RunAndReturn(func(_ context.Context, category *entity.Category) error {
			assert.Equal(t, "Electronics", category.Name)
			category.ID = uuid.New()

			return nil
		})

	category, err := service.CreateCategory(ctx, merchantID, &usecase.CreateCategoryInput{
		Name: "  Electronics  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", category.Name)
}

func TestCategoryService_CreateCategory_BlankName(t *testing.T) {
	service, _, _ := newCategoryServiceForTest(t)

	_, err := service.CreateCategory(context.Background(), uuid.New(), &usecase.CreateCategoryInput{
		Name: "   ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_CreateCategory_NotMerchant(t *testing.T) {
	service, _, mockUserRepo := newCategoryServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, customerID).
		Return(&entity.User{
			ID:   customerID,
			Type: entity.UserTypeCustomer,
		}, nil)

	_, err := service.CreateCategory(ctx, customerID, &usecase.CreateCategoryInput{
		Name: "Electronics",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
