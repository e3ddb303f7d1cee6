package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
)

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	wishlistRepo   repository.WishlistRepository
	productRepo    repository.ProductRepository
	staleAfterDays int
	logger         *slog.Logger
	now            func() time.Time
}

// ReminderServiceParams holds dependencies for reminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	staleAfterDays := 3
	if params.Config != nil && params.Config.Reminder.StaleAfterDays > 0 {
		staleAfterDays = params.Config.Reminder.StaleAfterDays
	}

	return &reminderService{
		wishlistRepo:   params.WishlistRepo,
		productRepo:    params.ProductRepo,
		staleAfterDays: staleAfterDays,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// SweepWishlists emits a reminder log line for every wishlist entry that has
// been sitting untouched longer than the staleness window. The sweep is
// read-only; entries stay on the wishlist until the customer acts.
func (srv *reminderService) SweepWishlists(ctx context.Context) (int, error) {
	cutoff := srv.now().AddDate(0, 0, -srv.staleAfterDays)

	items, err := srv.wishlistRepo.ListCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list stale wishlist entries")
	}

	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := srv.productRepo.ListProductsByIDs(ctx, productIDs)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load products for reminder sweep")
	}

	productsByID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	reminded := 0
	for _, item := range items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			continue
		}

		srv.logger.InfoContext(ctx, "Wishlist reminder",
			slog.Any("customerID", item.CustomerID),
			slog.Any("productID", product.ID),
			slog.String("productName", product.Name),
			slog.Time("addedAt", item.CreatedAt),
		)
		reminded++
	}

	srv.logger.InfoContext(ctx, "Wishlist sweep completed",
		slog.Time("cutoff", cutoff), slog.Int("reminded", reminded))

	return reminded, nil
}
