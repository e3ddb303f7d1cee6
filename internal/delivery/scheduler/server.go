// Package scheduler runs periodic background jobs as a delivery alongside
// the HTTP server.
package scheduler

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Reminder usecase.ReminderUsecase
}

type schedulerServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	cron     *cron.Cron
	reminder usecase.ReminderUsecase
}

// NewServer builds the cron-backed scheduler delivery. The wishlist reminder
// sweep is registered against the configured cron expression.
func NewServer(params SchedulerParams) (delivery.Delivery, error) {
	srv := &schedulerServer{
		cfg:      params.Config,
		logger:   params.Logger,
		cron:     cron.New(),
		reminder: params.Reminder,
	}

	if _, err := srv.cron.AddFunc(params.Config.Reminder.CronSpec, srv.runWishlistSweep); err != nil {
		return nil, errors.Wrap(err, "failed to register wishlist sweep job")
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *schedulerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting scheduler",
		slog.String("cronSpec", s.cfg.Reminder.CronSpec))
	s.cron.Start()

	<-ctx.Done()

	return nil
}

func (s *schedulerServer) runWishlistSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	count, err := s.reminder.SweepWishlists(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Wishlist sweep failed", slog.Any("error", err))

		return
	}

	s.logger.InfoContext(ctx, "Wishlist sweep finished", slog.Int("reminded", count))
}

func (s *schedulerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down scheduler")

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	return nil
}
