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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the customer's cart priced at current product prices.
// Prices are never stored on cart lines, so a merchant price change is
// visible on the next cart view.
func (srv *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*usecase.CartResponse, error) {
	cart, err := srv.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return srv.buildCartResponse(ctx, cart)
}

// AddItem puts a product into the cart. Adding a product already present
// increments the existing line instead of creating a second one.
func (srv *cartService) AddItem(ctx context.Context, customerID uuid.UUID, input *usecase.AddCartItemInput) (*usecase.CartResponse, error) {
	if input.Count < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("count must be at least 1")
	}

	if _, err := srv.productRepo.FindProductByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product during cart add")
	}

	cart, err := srv.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	existing, err := srv.cartRepo.FindCartItemByCartAndProduct(ctx, cart.ID, input.ProductID)
	switch {
	case err == nil:
		if err := srv.cartRepo.UpdateCartItemCount(ctx, existing.ID, existing.Count+input.Count); err != nil {
			return nil, errors.Wrap(err, "failed to increment cart item")
		}
	case errors.Is(err, repository.ErrCartItemNotFound):
		item := &entity.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Count:     input.Count,
		}
		if err := srv.cartRepo.CreateCartItem(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to create cart item")
		}
	default:
		return nil, errors.Wrap(err, "failed to look up cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.Any("customerID", customerID), slog.Any("productID", input.ProductID), slog.Int("count", input.Count))

	cart, err = srv.loadCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return srv.buildCartResponse(ctx, cart)
}

// RemoveItem deletes one line from the customer's own cart.
func (srv *cartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error {
	cart, err := srv.loadCart(ctx, customerID)
	if err != nil {
		return err
	}

	item, err := srv.cartRepo.FindCartItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to load cart item")
	}

	if item.CartID != cart.ID {
		srv.log(ctx).Warn("Customer attempted to remove an item from another cart",
			slog.Any("customerID", customerID), slog.Any("itemID", itemID))

		return domainerrors.ErrOwnershipViolation
	}

	if err := srv.cartRepo.DeleteCartItem(ctx, itemID); err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

func (srv *cartService) loadCart(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByUserID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			// Carts are created at registration, so a missing cart means
			// the caller is not a customer account.
			return nil, domainerrors.ErrForbidden
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (srv *cartService) buildCartResponse(ctx context.Context, cart *entity.Cart) (*usecase.CartResponse, error) {
	productIDs := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := srv.productRepo.ListProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	productsByID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	resp := &usecase.CartResponse{Items: make([]*usecase.CartItemResponse, 0, len(cart.Items))}
	for _, item := range cart.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			// The product was deleted after it was carted. Skip the line
			// rather than failing the whole cart view.
			continue
		}

		line := &usecase.CartItemResponse{
			ItemID:       item.ID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			Count:        item.Count,
			PricePerUnit: product.Price,
			TotalPrice:   product.Price * float64(item.Count),
		}
		resp.Items = append(resp.Items, line)
		resp.TotalPrice += line.TotalPrice
	}

	return resp, nil
}
