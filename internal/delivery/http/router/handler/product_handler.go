package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	httpmiddleware "marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"
)

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	Name       string  `json:"name" validate:"required,max=255"`
	Details    string  `json:"details"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	StockCount int     `json:"stockCount" validate:"gte=0"`
	CategoryID string  `json:"categoryId" validate:"required,uuid"`
}

// ListProducts handles the public catalog listing request.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles the public single product request.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListMerchantProducts handles the merchant's own product listing request.
func (h *ProductHandler) ListMerchantProducts(c echo.Context) error {
	merchantID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	products, err := h.uc.ListMerchantProducts(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// CreateProduct handles the merchant product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	merchantID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), merchantID, &usecase.CreateProductInput{
		Name:       req.Name,
		Details:    req.Details,
		Price:      req.Price,
		StockCount: req.StockCount,
		CategoryID: categoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles the merchant product update request.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	merchantID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), merchantID, productID, &usecase.UpdateProductInput{
		Name:       req.Name,
		Details:    req.Details,
		Price:      req.Price,
		StockCount: req.StockCount,
		CategoryID: categoryID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles the merchant product deletion request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	merchantID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), merchantID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
