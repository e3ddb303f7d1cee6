package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
)

const defaultPhotoContentType = "application/octet-stream"

// photoService implements the PhotoUsecase interface.
type photoService struct {
	photoRepo   repository.ProductPhotoRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// PhotoServiceParams holds dependencies for photoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	PhotoRepo   repository.ProductPhotoRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		photoRepo:   params.PhotoRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadPhoto stores a binary photo under a product owned by the calling merchant.
func (srv *photoService) UploadPhoto(ctx context.Context, merchantID, productID uuid.UUID, input *usecase.UploadPhotoInput) (uuid.UUID, error) {
	if len(input.Data) == 0 {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("photo payload is empty")
	}

	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return uuid.Nil, domainerrors.ErrProductNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to load product during photo upload")
	}
	if product.MerchantID != merchantID {
		srv.log(ctx).Warn("Merchant attempted to add a photo to another merchant's product",
			slog.Any("productID", productID), slog.Any("merchantID", merchantID))

		return uuid.Nil, domainerrors.ErrOwnershipViolation
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultPhotoContentType
	}

	photo := &entity.ProductPhoto{
		ProductID:   productID,
		Data:        input.Data,
		ContentType: contentType,
	}
	if err := srv.photoRepo.CreatePhoto(ctx, photo); err != nil {
		return uuid.Nil, err
	}

	srv.log(ctx).Info("Product photo uploaded",
		slog.Any("photoID", photo.ID), slog.Any("productID", productID), slog.Int("bytes", len(input.Data)))

	return photo.ID, nil
}

// GetPhoto serves a photo's payload. The photo must belong to the addressed
// product, so a valid photo ID paired with the wrong product still 404s.
func (srv *photoService) GetPhoto(ctx context.Context, productID, photoID uuid.UUID) (*usecase.PhotoOutput, error) {
	if _, err := srv.productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product during photo lookup")
	}

	photo, err := srv.photoRepo.FindPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return nil, domainerrors.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to load product photo")
	}

	if photo.ProductID != productID {
		return nil, domainerrors.ErrPhotoNotFound
	}

	return &usecase.PhotoOutput{
		ID:          photo.ID,
		Data:        photo.Data,
		ContentType: photo.ContentType,
	}, nil
}
