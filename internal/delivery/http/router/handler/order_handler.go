package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	httpmiddleware "marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type cancelOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type updateOrderStatusRequest struct {
	Status       string `json:"status" validate:"required"`
	RejectReason string `json:"rejectReason"`
}

// Checkout converts the customer's cart into orders.
func (h *OrderHandler) Checkout(c echo.Context) error {
	customerID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	orders, err := h.uc.Checkout(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, orders, "Checkout completed successfully")
}

// ListCustomerOrders returns every order the customer has placed.
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	customerID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	orders, err := h.uc.ListCustomerOrders(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// CancelOrder rejects an order on the customer's behalf. A reason is
// mandatory.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	customerID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req cancelOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), customerID, orderID, &usecase.CancelOrderInput{
		Reason: req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// ListMerchantOrders returns orders placed against the merchant's products.
func (h *OrderHandler) ListMerchantOrders(c echo.Context) error {
	merchantID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	orders, err := h.uc.ListMerchantOrders(c.Request().Context(), merchantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateOrderStatus moves an order through the merchant-side lifecycle.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	merchantID, ok := httpmiddleware.UserID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_TOKEN", "User ID missing from token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), merchantID, orderID, &usecase.UpdateOrderStatusInput{
		Status:       entity.OrderStatus(req.Status),
		RejectReason: req.RejectReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
