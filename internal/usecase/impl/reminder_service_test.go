package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReminderService_SweepWishlists(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewReminderService(ReminderServiceParams{
		WishlistRepo: mockWishlistRepo,
		ProductRepo:  mockProductRepo,
		Config:       &config.Config{},
		Logger:       testLogger(),
	}).(*reminderService)

	fixedNow := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	ctx := context.Background()
	staleProductID := uuid.New()
	deletedProductID := uuid.New()
	cutoff := fixedNow.AddDate(0, 0, -3)

	mockWishlistRepo.EXPECT().
		ListCreatedBefore(ctx, cutoff).
		Return([]*entity.WishlistItem{
			{ID: uuid.New(), CustomerID: uuid.New(), ProductID: staleProductID, CreatedAt: cutoff.AddDate(0, 0, -2)},
			{ID: uuid.New(), CustomerID: uuid.New(), ProductID: deletedProductID, CreatedAt: cutoff.AddDate(0, 0, -5)},
		}, nil)

	// Only the product that still exists produces a reminder.
	mockProductRepo.EXPECT().
		ListProductsByIDs(ctx, []uuid.UUID{staleProductID, deletedProductID}).
		Return([]*entity.Product{
			{ID: staleProductID, Name: "Widget", Price: 9.99},
		}, nil)

	reminded, err := service.SweepWishlists(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reminded)
}

func TestReminderService_SweepWishlists_ConfiguredWindow(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewReminderService(ReminderServiceParams{
		WishlistRepo: mockWishlistRepo,
		ProductRepo:  mockProductRepo,
		Config: &config.Config{
			Reminder: config.ReminderConfig{StaleAfterDays: 7},
		},
		Logger: testLogger(),
	}).(*reminderService)

	fixedNow := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	ctx := context.Background()

	mockWishlistRepo.EXPECT().
		ListCreatedBefore(ctx, fixedNow.AddDate(0, 0, -7)).
		Return([]*entity.WishlistItem{}, nil)

	mockProductRepo.EXPECT().
		ListProductsByIDs(ctx, []uuid.UUID{}).
		Return([]*entity.Product{}, nil)

	reminded, err := service.SweepWishlists(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, reminded)
}

func TestReminderService_SweepWishlists_ListError(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewReminderService(ReminderServiceParams{
		WishlistRepo: mockWishlistRepo,
		ProductRepo:  mockProductRepo,
		Config:       &config.Config{},
		Logger:       testLogger(),
	})

	ctx := context.Background()

	mockWishlistRepo.EXPECT().
		ListCreatedBefore(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("connection refused"))

	_, err := service.SweepWishlists(ctx)
	require.Error(t, err)
}
