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

func newOrderServiceForTest(t *testing.T) (usecase.OrderUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockOrderRepository, *mockRepo.MockProductRepository) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:   mockTxManager,
		OrderRepo:   mockOrderRepo,
		ProductRepo: mockProductRepo,
		Logger:      testLogger(),
	})

	return service, mockTxManager, mockOrderRepo, mockProductRepo
}

func checkoutFactory(t *testing.T) (*mockRepo.MockRepositoryFactory, *mockRepo.MockCartRepository, *mockRepo.MockProductRepository, *mockRepo.MockOrderRepository) {
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().ProductRepo().Return(txProductRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)

	return factory, txCartRepo, txProductRepo, txOrderRepo
}

func TestOrderService_Checkout_Success(t *testing.T) {
	service, mockTxManager, _, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	factory, txCartRepo, txProductRepo, txOrderRepo := checkoutFactory(t)

	txCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{
			ID:     cartID,
			UserID: customerID,
			Items: []*entity.CartItem{
				{ID: uuid.New(), CartID: cartID, ProductID: productID, Count: 2},
			},
		}, nil)

	txProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget", Price: 10.00, StockCount: 5}, nil)

	txProductRepo.EXPECT().
		DecrementStock(ctx, productID, 2).
		Return(nil)

	txOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			assert.Equal(t, entity.OrderStatusCreated, order.Status)
			assert.Equal(t, 20.00, order.TotalAmount)
			order.ID = uuid.New()

			return nil
		})

	txCartRepo.EXPECT().
		DeleteCartItemsByCartID(ctx, cartID).
		Return(nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	orders, err := service.Checkout(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusCreated, orders[0].Status)
	assert.Equal(t, "Widget", orders[0].ProductName)
	assert.Equal(t, 20.00, orders[0].TotalAmount)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	service, mockTxManager, _, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	txCartRepo := mockRepo.NewMockCartRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().ProductRepo().Return(txProductRepo)
	factory.EXPECT().OrderRepo().Return(mockRepo.NewMockOrderRepository(t))

	txCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{
			ID:     cartID,
			UserID: customerID,
			Items: []*entity.CartItem{
				{ID: uuid.New(), CartID: cartID, ProductID: productID, Count: 10},
			},
		}, nil)

	txProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget", Price: 10.00, StockCount: 3}, nil)

	txProductRepo.EXPECT().
		DecrementStock(ctx, productID, 10).
		Return(domainerrors.ErrInsufficientStock)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := service.Checkout(ctx, customerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	service, mockTxManager, _, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()

	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().ProductRepo().Return(mockRepo.NewMockProductRepository(t))
	factory.EXPECT().OrderRepo().Return(mockRepo.NewMockOrderRepository(t))

	txCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{ID: uuid.New(), UserID: customerID}, nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := service.Checkout(ctx, customerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	service, _, mockOrderRepo, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			CustomerID: customerID,
			Status:     entity.OrderStatusCreated,
			Product:    &entity.Product{Name: "Widget"},
		}, nil)

	mockOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.OrderStatusRejectByCustomer, "changed my mind").
		Return(nil)

	order, err := service.CancelOrder(ctx, customerID, orderID, &usecase.CancelOrderInput{
		Reason: "changed my mind",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRejectByCustomer, order.Status)
	assert.Equal(t, "changed my mind", order.RejectReason)
}

func TestOrderService_CancelOrder_ReasonRequired(t *testing.T) {
	service, _, _, _ := newOrderServiceForTest(t)

	_, err := service.CancelOrder(context.Background(), uuid.New(), uuid.New(), &usecase.CancelOrderInput{
		Reason: "   ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRejectReasonRequired)
}

func TestOrderService_CancelOrder_ForeignOrder(t *testing.T) {
	service, _, mockOrderRepo, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			CustomerID: uuid.New(),
			Status:     entity.OrderStatusCreated,
		}, nil)

	_, err := service.CancelOrder(ctx, uuid.New(), orderID, &usecase.CancelOrderInput{
		Reason: "changed my mind",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestOrderService_CancelOrder_AlreadyDelivered(t *testing.T) {
	service, _, mockOrderRepo, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			CustomerID: customerID,
			Status:     entity.OrderStatusDelivered,
		}, nil)

	_, err := service.CancelOrder(ctx, customerID, orderID, &usecase.CancelOrderInput{
		Reason: "too late",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateOrderStatus_Accept(t *testing.T) {
	service, _, mockOrderRepo, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	merchantID := uuid.New()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{
			ID:      orderID,
			Status:  entity.OrderStatusCreated,
			Product: &entity.Product{Name: "Widget", MerchantID: merchantID},
		}, nil)

	mockOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.OrderStatusAccepted, "").
		Return(nil)

	order, err := service.UpdateOrderStatus(ctx, merchantID, orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, order.Status)
}

func TestOrderService_UpdateOrderStatus_RejectRequiresReason(t *testing.T) {
	service, _, _, _ := newOrderServiceForTest(t)

	_, err := service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusRejectByMerchant,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRejectReasonRequired)
}

func TestOrderService_UpdateOrderStatus_MerchantCannotCancelForCustomer(t *testing.T) {
	service, _, _, _ := newOrderServiceForTest(t)

	_, err := service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateOrderStatusInput{
		Status:       entity.OrderStatusRejectByCustomer,
		RejectReason: "nope",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateOrderStatus_IllegalTransition(t *testing.T) {
	service, _, mockOrderRepo, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	merchantID := uuid.New()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{
			ID:      orderID,
			Status:  entity.OrderStatusDelivered,
			Product: &entity.Product{Name: "Widget", MerchantID: merchantID},
		}, nil)

	_, err := service.UpdateOrderStatus(ctx, merchantID, orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusAccepted,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateOrderStatus_ForeignProduct(t *testing.T) {
	service, _, mockOrderRepo, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{
			ID:      orderID,
			Status:  entity.OrderStatusCreated,
			Product: &entity.Product{Name: "Widget", MerchantID: uuid.New()},
		}, nil)

	_, err := service.UpdateOrderStatus(ctx, uuid.New(), orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatusAccepted,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestOrderService_ListMerchantOrders(t *testing.T) {
	service, _, mockOrderRepo, _ := newOrderServiceForTest(t)

	ctx := context.Background()
	merchantID := uuid.New()

	mockOrderRepo.EXPECT().
		ListOrdersForMerchant(ctx, merchantID).
		Return([]*entity.Order{
			{
				ID:          uuid.New(),
				Status:      entity.OrderStatusCreated,
				Count:       1,
				TotalAmount: 10.00,
				Product:     &entity.Product{Name: "Widget", MerchantID: merchantID},
			},
		}, nil)

	orders, err := service.ListMerchantOrders(ctx, merchantID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Widget", orders[0].ProductName)
}
