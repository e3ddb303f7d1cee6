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

func newCartServiceForTest(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository, *mockRepo.MockProductRepository) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    mockCartRepo,
		ProductRepo: mockProductRepo,
		Logger:      testLogger(),
	})

	return service, mockCartRepo, mockProductRepo
}

func TestCartService_GetCart_LivePricing(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{
			ID:     cartID,
			UserID: customerID,
			Items: []*entity.CartItem{
				{ID: uuid.New(), CartID: cartID, ProductID: productID, Count: 3},
			},
		}, nil)

	// The product price changed after the item was carted; the cart view
	// must reflect the current price.
	mockProductRepo.EXPECT().
		ListProductsByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{
			{ID: productID, Name: "Widget", Price: 12.50},
		}, nil)

	cart, err := service.GetCart(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 12.50, cart.Items[0].PricePerUnit)
	assert.Equal(t, 37.50, cart.Items[0].TotalPrice)
	assert.Equal(t, 37.50, cart.TotalPrice)
}

func TestCartService_GetCart_SkipsDeletedProducts(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	liveProductID := uuid.New()
	deletedProductID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{
			ID:     cartID,
			UserID: customerID,
			Items: []*entity.CartItem{
				{ID: uuid.New(), CartID: cartID, ProductID: liveProductID, Count: 1},
				{ID: uuid.New(), CartID: cartID, ProductID: deletedProductID, Count: 2},
			},
		}, nil)

	mockProductRepo.EXPECT().
		ListProductsByIDs(ctx, []uuid.UUID{liveProductID, deletedProductID}).
		Return([]*entity.Product{
			{ID: liveProductID, Name: "Widget", Price: 5.00},
		}, nil)

	cart, err := service.GetCart(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, liveProductID, cart.Items[0].ProductID)
	assert.Equal(t, 5.00, cart.TotalPrice)
}

func TestCartService_GetCart_NoCartMeansForbidden(t *testing.T) {
	service, mockCartRepo, _ := newCartServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(nil, repository.ErrCartNotFound)

	_, err := service.GetCart(ctx, customerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget", Price: 5.00}, nil)

	emptyCart := &entity.Cart{ID: cartID, UserID: customerID}
	filledCart := &entity.Cart{
		ID:     cartID,
		UserID: customerID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductID: productID, Count: 2},
		},
	}

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(emptyCart, nil).
		Once()

	mockCartRepo.EXPECT().
		FindCartItemByCartAndProduct(ctx, cartID, productID).
		Return(nil, repository.ErrCartItemNotFound)

	mockCartRepo.EXPECT().
		CreateCartItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		RunAndReturn(func(_ context.Context, item *entity.CartItem) error {
			assert.Equal(t, cartID, item.CartID)
			assert.Equal(t, 2, item.Count)

			return nil
		})

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(filledCart, nil).
		Once()

	mockProductRepo.EXPECT().
		ListProductsByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{{ID: productID, Name: "Widget", Price: 5.00}}, nil)

	cart, err := service.AddItem(ctx, customerID, &usecase.AddCartItemInput{
		ProductID: productID,
		Count:     2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Count)
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	service, mockCartRepo, mockProductRepo := newCartServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Widget", Price: 5.00}, nil)

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{ID: cartID, UserID: customerID}, nil).
		Once()

	mockCartRepo.EXPECT().
		FindCartItemByCartAndProduct(ctx, cartID, productID).
		Return(&entity.CartItem{ID: itemID, CartID: cartID, ProductID: productID, Count: 1}, nil)

	mockCartRepo.EXPECT().
		UpdateCartItemCount(ctx, itemID, 4).
		Return(nil)

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{
			ID:     cartID,
			UserID: customerID,
			Items: []*entity.CartItem{
				{ID: itemID, CartID: cartID, ProductID: productID, Count: 4},
			},
		}, nil).
		Once()

	mockProductRepo.EXPECT().
		ListProductsByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{{ID: productID, Name: "Widget", Price: 5.00}}, nil)

	cart, err := service.AddItem(ctx, customerID, &usecase.AddCartItemInput{
		ProductID: productID,
		Count:     3,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Count)
	assert.Equal(t, 20.00, cart.TotalPrice)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	service, _, mockProductRepo := newCartServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		ProductID: productID,
		Count:     1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_InvalidCount(t *testing.T) {
	service, _, _ := newCartServiceForTest(t)

	_, err := service.AddItem(context.Background(), uuid.New(), &usecase.AddCartItemInput{
		ProductID: uuid.New(),
		Count:     0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	service, mockCartRepo, _ := newCartServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{ID: cartID, UserID: customerID}, nil)

	mockCartRepo.EXPECT().
		FindCartItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, CartID: cartID, Count: 5}, nil)

	mockCartRepo.EXPECT().
		DeleteCartItem(ctx, itemID).
		Return(nil)

	err := service.RemoveItem(ctx, customerID, itemID)
	require.NoError(t, err)
}

func TestCartService_RemoveItem_ForeignCart(t *testing.T) {
	service, mockCartRepo, _ := newCartServiceForTest(t)

	ctx := context.Background()
	customerID := uuid.New()
	itemID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUserID(ctx, customerID).
		Return(&entity.Cart{ID: uuid.New(), UserID: customerID}, nil)

	mockCartRepo.EXPECT().
		FindCartItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, CartID: uuid.New(), Count: 1}, nil)

	err := service.RemoveItem(ctx, customerID, itemID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}
