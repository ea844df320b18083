package jobs

import (
	"context"
	"log/slog"
	"time"

	"travelorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RetentionSweepJob permanently removes soft-deleted travel orders whose
// retention window has expired. Runs once a day during low-traffic hours.
type RetentionSweepJob struct {
	handler   commands.PurgeDeletedTravelOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRetentionSweepJob creates the daily purge job. The retention duration
// controls how long soft-deleted orders stay recoverable.
func NewRetentionSweepJob(
	handler commands.PurgeDeletedTravelOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *RetentionSweepJob {
	return &RetentionSweepJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "retention_sweep_job"),
	}
}

// Start schedules the sweep to run daily at 03:00.
func (j *RetentionSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeDeletedTravelOrdersCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention sweep command rejected", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention sweep failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Retention sweep purged expired orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Retention sweep job started (running daily at 03:00)",
		"retention", j.retention.String())
	return nil
}

// Stop stops the retention sweep job.
func (j *RetentionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Retention sweep job stopped")
}
