package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts every cart line into an order in one transaction. Stock
// is decremented per product with an in-database guard, so two customers
// racing for the last unit cannot both succeed; the transaction rolls back
// and the cart stays untouched when any line cannot be covered.
func (srv *orderService) Checkout(ctx context.Context, customerID uuid.UUID) ([]*usecase.OrderResponse, error) {
	var created []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		cart, err := cartRepo.FindCartByUserID(ctx, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrForbidden
			}

			return errors.Wrap(err, "failed to load cart during checkout")
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrCartEmpty
		}

		for _, item := range cart.Items {
			product, err := productRepo.FindProductByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return errors.Wrap(err, "failed to load product during checkout")
			}

			if err := productRepo.DecrementStock(ctx, product.ID, item.Count); err != nil {
				return err
			}

			order := &entity.Order{
				CustomerID:  customerID,
				ProductID:   product.ID,
				Count:       item.Count,
				TotalAmount: product.Price * float64(item.Count),
				Status:      entity.OrderStatusCreated,
			}
			if err := orderRepo.CreateOrder(ctx, order); err != nil {
				return errors.Wrap(err, "failed to create order during checkout")
			}

			order.Product = product
			created = append(created, order)
		}

		if err := cartRepo.DeleteCartItemsByCartID(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart during checkout")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Checkout completed", slog.Any("customerID", customerID), slog.Int("orders", len(created)))

	return toOrderResponses(created), nil
}

// ListCustomerOrders returns the customer's own orders, newest first.
func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*usecase.OrderResponse, error) {
	orders, err := srv.orderRepo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return toOrderResponses(orders), nil
}

// CancelOrder is the customer-side rejection. It requires a reason and is
// only allowed while the order has not been delivered or already rejected.
func (srv *orderService) CancelOrder(ctx context.Context, customerID, orderID uuid.UUID, input *usecase.CancelOrderInput) (*usecase.OrderResponse, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, domainerrors.ErrRejectReasonRequired
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order during cancellation")
	}

	if order.CustomerID != customerID {
		srv.log(ctx).Warn("Customer attempted to cancel another customer's order",
			slog.Any("orderID", orderID), slog.Any("customerID", customerID))

		return nil, domainerrors.ErrOwnershipViolation
	}

	if !order.Status.CanTransitionTo(entity.OrderStatusRejectByCustomer) {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage(
			"order in status " + order.Status.String() + " cannot be cancelled")
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, orderID, entity.OrderStatusRejectByCustomer, reason); err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	srv.log(ctx).Info("Order cancelled by customer", slog.Any("orderID", orderID))

	order.Status = entity.OrderStatusRejectByCustomer
	order.RejectReason = reason

	return toOrderResponse(order), nil
}

// ListMerchantOrders returns orders on the merchant's products. Orders the
// customer already cancelled are excluded from this view.
func (srv *orderService) ListMerchantOrders(ctx context.Context, merchantID uuid.UUID) ([]*usecase.OrderResponse, error) {
	orders, err := srv.orderRepo.ListOrdersForMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant orders")
	}

	return toOrderResponses(orders), nil
}

// UpdateOrderStatus is the merchant-side transition: accept, deliver or
// reject. The merchant must own the ordered product, the transition must be
// legal from the current status, and rejections must carry a reason.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, merchantID, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*usecase.OrderResponse, error) {
	if !input.Status.IsValid() {
		return nil, invalidStatusError(input.Status)
	}
	if input.Status == entity.OrderStatusRejectByCustomer || input.Status == entity.OrderStatusCreated {
		// Only the customer cancels, and nothing moves back to CREATED.
		return nil, invalidStatusError(input.Status)
	}

	reason := strings.TrimSpace(input.RejectReason)
	if input.Status.RequiresReason() && reason == "" {
		return nil, domainerrors.ErrRejectReasonRequired
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order during status update")
	}

	if order.Product == nil || order.Product.MerchantID != merchantID {
		srv.log(ctx).Warn("Merchant attempted to update an order on another merchant's product",
			slog.Any("orderID", orderID), slog.Any("merchantID", merchantID))

		return nil, domainerrors.ErrOwnershipViolation
	}

	if !order.Status.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage(
			"cannot move order from " + order.Status.String() + " to " + input.Status.String())
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, orderID, input.Status, reason); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID), slog.Any("from", order.Status), slog.Any("to", input.Status))

	order.Status = input.Status
	if reason != "" {
		order.RejectReason = reason
	}

	return toOrderResponse(order), nil
}

func invalidStatusError(status entity.OrderStatus) error {
	return domainerrors.ErrInvalidOrderStatus.WrapMessage("status " + status.String() + " is not allowed here")
}

func toOrderResponse(order *entity.Order) *usecase.OrderResponse {
	resp := &usecase.OrderResponse{
		OrderID:      order.ID,
		ProductID:    order.ProductID,
		Count:        order.Count,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		RejectReason: order.RejectReason,
		CreatedAt:    order.CreatedAt,
	}
	if order.Product != nil {
		resp.ProductName = order.Product.Name
	}

	return resp
}

func toOrderResponses(orders []*entity.Order) []*usecase.OrderResponse {
	responses := make([]*usecase.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}

	return responses
}
