package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UploadPhotoInput carries the binary payload of a product photo upload.
type UploadPhotoInput struct {
	Data        []byte
	ContentType string
}

// PhotoOutput returns a photo's payload for direct HTTP serving.
type PhotoOutput struct {
	ID          uuid.UUID
	Data        []byte
	ContentType string
}

// PhotoUsecase defines the interface for binary product photo operations.
// Uploads require the owning merchant; reads are public but validate that
// the photo actually belongs to the addressed product.
type PhotoUsecase interface {
	UploadPhoto(ctx context.Context, merchantID, productID uuid.UUID, input *UploadPhotoInput) (uuid.UUID, error)
	GetPhoto(ctx context.Context, productID, photoID uuid.UUID) (*PhotoOutput, error)
}
