package impl

import (
	"context"
	"log/slog"
	"strings"
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

// newProductWindow is how long a product counts as newly listed.
const newProductWindow = 72 * time.Hour

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
	now          func() time.Time
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the whole public catalog.
func (srv *productService) ListProducts(ctx context.Context) ([]*usecase.ProductResponse, error) {
	products, err := srv.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return srv.toResponses(products), nil
}

// ListMerchantProducts returns the catalog restricted to one merchant's listings.
func (srv *productService) ListMerchantProducts(ctx context.Context, merchantID uuid.UUID) ([]*usecase.ProductResponse, error) {
	products, err := srv.productRepo.ListProductsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant products")
	}

	return srv.toResponses(products), nil
}

// GetProduct returns a single product by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductResponse, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return srv.toResponse(product), nil
}

// CreateProduct publishes a new product under the calling merchant.
func (srv *productService) CreateProduct(ctx context.Context, merchantID uuid.UUID, input *usecase.CreateProductInput) (*usecase.ProductResponse, error) {
	if err := srv.validateProductInput(input.Name, input.Price, input.StockCount); err != nil {
		return nil, err
	}

	if _, err := srv.categoryRepo.FindCategoryByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to load category during product creation")
	}

	product := &entity.Product{
		Name:       strings.TrimSpace(input.Name),
		Details:    input.Details,
		Price:      input.Price,
		StockCount: input.StockCount,
		CategoryID: input.CategoryID,
		MerchantID: merchantID,
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		srv.log(ctx).Warn("Product creation failed", slog.Any("merchantID", merchantID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("merchantID", merchantID))

	// Reload so the response carries the category and merchant names.
	return srv.GetProduct(ctx, product.ID)
}

// UpdateProduct modifies a product owned by the calling merchant.
func (srv *productService) UpdateProduct(ctx context.Context, merchantID, productID uuid.UUID, input *usecase.UpdateProductInput) (*usecase.ProductResponse, error) {
	if err := srv.validateProductInput(input.Name, input.Price, input.StockCount); err != nil {
		return nil, err
	}

	product, err := srv.loadOwnedProduct(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}

	if product.CategoryID != input.CategoryID {
		if _, err := srv.categoryRepo.FindCategoryByID(ctx, input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, errors.Wrap(err, "failed to load category during product update")
		}
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Details = input.Details
	product.Price = input.Price
	product.StockCount = input.StockCount
	product.CategoryID = input.CategoryID

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", productID), slog.Any("merchantID", merchantID))

	return srv.GetProduct(ctx, productID)
}

// DeleteProduct removes a product owned by the calling merchant. Products
// referenced by any order are kept so order history stays intact.
func (srv *productService) DeleteProduct(ctx context.Context, merchantID, productID uuid.UUID) error {
	if _, err := srv.loadOwnedProduct(ctx, merchantID, productID); err != nil {
		return err
	}

	hasOrders, err := srv.orderRepo.ExistsOrderForProduct(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to check orders during product deletion")
	}
	if hasOrders {
		return domainerrors.ErrProductHasOrders
	}

	if err := srv.productRepo.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("merchantID", merchantID))

	return nil
}

func (srv *productService) loadOwnedProduct(ctx context.Context, merchantID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	if product.MerchantID != merchantID {
		srv.log(ctx).Warn("Merchant attempted to modify another merchant's product",
			slog.Any("productID", productID), slog.Any("merchantID", merchantID))

		return nil, domainerrors.ErrOwnershipViolation
	}

	return product, nil
}

func (srv *productService) validateProductInput(name string, price float64, stockCount int) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if price <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	}
	if stockCount < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("stock count must not be negative")
	}

	return nil
}

func (srv *productService) toResponse(product *entity.Product) *usecase.ProductResponse {
	return productToResponse(product, srv.now())
}

// productToResponse is shared with the wishlist service, which also renders
// full product responses.
func productToResponse(product *entity.Product, now time.Time) *usecase.ProductResponse {
	resp := &usecase.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Details:    product.Details,
		Price:      product.Price,
		StockCount: product.StockCount,
		CategoryID: product.CategoryID,
		MerchantID: product.MerchantID,
		PhotoIDs:   product.PhotoIDs,
		CreatedAt:  product.CreatedAt,
		IsNew:      now.Sub(product.CreatedAt) < newProductWindow,
	}
	if resp.PhotoIDs == nil {
		resp.PhotoIDs = []uuid.UUID{}
	}
	if product.Category != nil {
		resp.CategoryName = product.Category.Name
	}
	if product.Merchant != nil {
		resp.MerchantCompanyName = product.Merchant.CompanyName
	}

	return resp
}

func (srv *productService) toResponses(products []*entity.Product) []*usecase.ProductResponse {
	responses := make([]*usecase.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, srv.toResponse(product))
	}

	return responses
}
