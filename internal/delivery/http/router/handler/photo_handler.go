package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	httpmiddleware "marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"
)

// PhotoHandler holds dependencies for product photo handlers.
type PhotoHandler struct {
	uc     usecase.PhotoUsecase
	logger *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(uc usecase.PhotoUsecase, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadPhoto handles a merchant's photo upload from the multipart "file"
// field. The file's declared content type is stored alongside the bytes and
// echoed back when the photo is served.
func (h *PhotoHandler) UploadPhoto(c echo.Context) error {
	merchantID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read photo payload")
	}

	photoID, err := h.uc.UploadPhoto(c.Request().Context(), merchantID, productID, &usecase.UploadPhotoInput{
		Data:        data,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"photoId": photoID}, "Photo uploaded successfully")
}

// GetPhoto serves a photo's binary payload with its stored content type.
func (h *PhotoHandler) GetPhoto(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	photoID, err := uuid.Parse(c.Param("photoId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid photo ID")
	}

	photo, err := h.uc.GetPhoto(c.Request().Context(), productID, photoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, photo.ContentType, photo.Data)
}
