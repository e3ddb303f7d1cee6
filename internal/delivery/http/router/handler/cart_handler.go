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

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Count     int    `json:"count" validate:"required,gt=0"`
}

// GetCart returns the customer's cart with live product pricing.
func (h *CartHandler) GetCart(c echo.Context) error {
	customerID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	cart, err := h.uc.GetCart(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddItem adds a product to the cart or increases its count when it is
// already there.
func (h *CartHandler) AddItem(c echo.Context) error {
	customerID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), customerID, &usecase.AddCartItemInput{
		ProductID: productID,
		Count:     req.Count,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// RemoveItem removes a cart line entirely, regardless of its count.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	customerID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), customerID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}
