package impl

import (
	"context"
	"testing"

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

func newPhotoServiceForTest(t *testing.T) (usecase.PhotoUsecase, *mockRepo.MockProductPhotoRepository, *mockRepo.MockProductRepository) {
	mockPhotoRepo := mockRepo.NewMockProductPhotoRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewPhotoService(PhotoServiceParams{
		PhotoRepo:   mockPhotoRepo,
		ProductRepo: mockProductRepo,
		Logger:      testLogger(),
	})

	return service, mockPhotoRepo, mockProductRepo
}

func TestPhotoService_UploadPhoto_Success(t *testing.T) {
	service, mockPhotoRepo, mockProductRepo := newPhotoServiceForTest(t)

	ctx := context.Background()
	merchantID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, MerchantID: merchantID}, nil)

	mockPhotoRepo.EXPECT().
		CreatePhoto(ctx, mock.AnythingOfType("*entity.ProductPhoto")).
		RunAndReturn(func(_ context.Context, photo *entity.ProductPhoto) error {
			assert.Equal(t, productID, photo.ProductID)
			assert.Equal(t, "image/png", photo.ContentType)
			photo.ID = uuid.New()

			return nil
		})

	photoID, err := service.UploadPhoto(ctx, merchantID, productID, &usecase.UploadPhotoInput{
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, photoID)
}

func TestPhotoService_UploadPhoto_DefaultContentType(t *testing.T) {
	service, mockPhotoRepo, mockProductRepo := newPhotoServiceForTest(t)

	ctx := context.Background()
	merchantID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, MerchantID: merchantID}, nil)

	mockPhotoRepo.EXPECT().
		CreatePhoto(ctx, mock.AnythingOfType("*entity.ProductPhoto")).
		RunAndReturn(func(_ context.Context, photo *entity.ProductPhoto) error {
			assert.Equal(t, "application/octet-stream", photo.ContentType)
			photo.ID = uuid.New()

			return nil
		})

	_, err := service.UploadPhoto(ctx, merchantID, productID, &usecase.UploadPhotoInput{
		Data: []byte{0x01},
	})
	require.NoError(t, err)
}

func TestPhotoService_UploadPhoto_EmptyPayload(t *testing.T) {
	service, _, _ := newPhotoServiceForTest(t)

	_, err := service.UploadPhoto(context.Background(), uuid.New(), uuid.New(), &usecase.UploadPhotoInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPhotoService_UploadPhoto_OwnershipViolation(t *testing.T) {
	service, _, mockProductRepo := newPhotoServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, MerchantID: uuid.New()}, nil)

	_, err := service.UploadPhoto(ctx, uuid.New(), productID, &usecase.UploadPhotoInput{
		Data: []byte{0x01},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestPhotoService_GetPhoto_Success(t *testing.T) {
	service, mockPhotoRepo, mockProductRepo := newPhotoServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()
	photoID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	mockPhotoRepo.EXPECT().
		FindPhotoByID(ctx, photoID).
		Return(&entity.ProductPhoto{
			ID:          photoID,
			ProductID:   productID,
			Data:        []byte{0x01, 0x02},
			ContentType: "image/jpeg",
		}, nil)

	photo, err := service.GetPhoto(ctx, productID, photoID)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.ContentType)
	assert.Equal(t, []byte{0x01, 0x02}, photo.Data)
}

func TestPhotoService_GetPhoto_WrongProduct(t *testing.T) {
	service, mockPhotoRepo, mockProductRepo := newPhotoServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()
	photoID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	// Photo exists but belongs to a different product; the lookup must 404
	// rather than leaking another product's photo.
	mockPhotoRepo.EXPECT().
		FindPhotoByID(ctx, photoID).
		Return(&entity.ProductPhoto{
			ID:        photoID,
			ProductID: uuid.New(),
			Data:      []byte{0x01},
		}, nil)

	_, err := service.GetPhoto(ctx, productID, photoID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)
}

func TestPhotoService_GetPhoto_UnknownProduct(t *testing.T) {
	service, _, mockProductRepo := newPhotoServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.GetPhoto(ctx, productID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
