package usecase

import "context"

// ReminderUsecase defines the interface for the daily wishlist sweep.
// SweepWishlists finds wishlist entries older than the configured staleness
// window and emits a reminder log line for each, returning the entry count.
type ReminderUsecase interface {
	SweepWishlists(ctx context.Context) (int, error)
}
