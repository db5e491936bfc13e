package jobs

import (
	"context"
	"errors"
	"log/slog"

	"parcellocker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RentReallocationJob manages the scheduled retry of locker allocation.
// Runs every 30 seconds to place rents that entered the system while no
// locker was free.
type RentReallocationJob struct {
	handler commands.ReallocatePendingRentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRentReallocationJob creates a new job sweeping the CREATED backlog.
func NewRentReallocationJob(
	handler commands.ReallocatePendingRentsCommandHandler,
	logger *slog.Logger,
) *RentReallocationJob {
	return &RentReallocationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rent_reallocation_job"),
	}
}

// Start begins the re-allocation job to run every 30 seconds.
func (j *RentReallocationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReallocatePendingRentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog is the expected idle case.
			if !errors.Is(err, commands.ErrNoPendingRents) {
				j.logger.ErrorContext(ctx, "Rent re-allocation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rent re-allocation job started (running every 30 seconds)")
	return nil
}

// Stop stops the re-allocation job.
func (j *RentReallocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rent re-allocation job stopped")
}
