package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
	now          func() time.Time
}

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWishlist returns the customer's saved products as full product
// responses, in the order the entries were saved, newest first.
func (srv *wishlistService) GetWishlist(ctx context.Context, customerID uuid.UUID) ([]*usecase.ProductResponse, error) {
	items, err := srv.wishlistRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := srv.productRepo.ListProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist products")
	}

	productsByID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	now := srv.now()
	responses := make([]*usecase.ProductResponse, 0, len(items))
	for _, item := range items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			// The product was deleted after it was saved. Skip the entry
			// rather than failing the whole wishlist view.
			continue
		}

		responses = append(responses, productToResponse(product, now))
	}

	return responses, nil
}

// AddProduct puts a product on the wishlist and returns it. Saving a product
// that is already on the wishlist returns the existing product without
// creating a duplicate.
func (srv *wishlistService) AddProduct(ctx context.Context, customerID, productID uuid.UUID) (*usecase.ProductResponse, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product during wishlist add")
	}

	_, err = srv.wishlistRepo.FindByCustomerAndProduct(ctx, customerID, productID)
	if err == nil {
		return productToResponse(product, srv.now()), nil
	}
	if !errors.Is(err, repository.ErrWishlistItemNotFound) {
		return nil, errors.Wrap(err, "failed to look up wishlist entry")
	}

	item := &entity.WishlistItem{
		CustomerID: customerID,
		ProductID:  productID,
	}
	if err := srv.wishlistRepo.CreateWishlistItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create wishlist entry")
	}

	srv.log(ctx).Debug("Wishlist entry added",
		slog.Any("customerID", customerID), slog.Any("productID", productID))

	return productToResponse(product, srv.now()), nil
}

// RemoveProduct takes a product off the wishlist.
func (srv *wishlistService) RemoveProduct(ctx context.Context, customerID, productID uuid.UUID) error {
	if _, err := srv.productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product during wishlist remove")
	}

	item, err := srv.wishlistRepo.FindByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return domainerrors.ErrWishlistItemNotFound
		}

		return errors.Wrap(err, "failed to look up wishlist entry")
	}

	if item.CustomerID != customerID {
		return domainerrors.ErrOwnershipViolation
	}

	if err := srv.wishlistRepo.DeleteWishlistItem(ctx, item.ID); err != nil {
		return errors.Wrap(err, "failed to delete wishlist entry")
	}

	return nil
}
