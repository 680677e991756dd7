package jobs

import (
	"fmt"
	"log/slog"

	"replenishment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	schedulingJob *ReplenishmentSchedulingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	scheduleDueOrdersHandler commands.ScheduleDueOrdersCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		schedulingJob: NewReplenishmentSchedulingJob(scheduleDueOrdersHandler, cronSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.schedulingJob.Start(); err != nil {
		return fmt.Errorf("failed to start replenishment scheduling job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.schedulingJob.Stop()
}
