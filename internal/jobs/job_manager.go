package jobs

import (
	"fmt"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs.
type JobManager struct {
	ratingReconciliationJob *RatingReconciliationJob
}

// NewJobManager wires all background jobs over their command handlers.
func NewJobManager(
	reconcileRatingsHandler commands.ReconcileRatingsCommandHandler,
	ratingSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ratingReconciliationJob: NewRatingReconciliationJob(reconcileRatingsHandler, ratingSchedule, logger),
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.ratingReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start rating reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job gracefully.
func (jm *JobManager) StopAll() {
	jm.ratingReconciliationJob.Stop()
}
