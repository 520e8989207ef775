package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RatingReconciliationJob periodically recomputes every restaurant's
// aggregate rating from its stored reviews. Ratings are maintained
// incrementally on write; the sweep corrects any drift.
type RatingReconciliationJob struct {
	handler  commands.ReconcileRatingsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRatingReconciliationJob creates the reconciliation job with a standard
// five-field cron schedule, e.g. "*/10 * * * *" for every ten minutes.
func NewRatingReconciliationJob(
	handler commands.ReconcileRatingsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RatingReconciliationJob {
	return &RatingReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "rating_reconciliation_job"),
	}
}

// Start schedules the job. Returns an error if the schedule is invalid.
func (j *RatingReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd, err := commands.NewReconcileRatingsCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Rating reconciliation command rejected", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Rating reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job.
func (j *RatingReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job stopped")
}
