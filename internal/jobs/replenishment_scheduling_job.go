package jobs

import (
	"context"
	"log/slog"
	"time"

	"replenishment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReplenishmentSchedulingJob manages the scheduled creation of standard
// orders. Each run scans for clients whose periodicity has elapsed and
// creates one order per due client.
type ReplenishmentSchedulingJob struct {
	handler  commands.ScheduleDueOrdersCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReplenishmentSchedulingJob creates a new scheduling job. cronSpec is a
// standard five-field cron expression.
func NewReplenishmentSchedulingJob(
	handler commands.ScheduleDueOrdersCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) *ReplenishmentSchedulingJob {
	return &ReplenishmentSchedulingJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(),
		logger:   logger.With("component", "replenishment_scheduling_job"),
	}
}

// Start begins the scheduling job on its cron schedule.
func (j *ReplenishmentSchedulingJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Replenishment scheduling job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the scheduling job.
func (j *ReplenishmentSchedulingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Replenishment scheduling job stopped")
}

func (j *ReplenishmentSchedulingJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewScheduleDueOrdersCommand(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Replenishment scheduling job failed to build command", "error", err)
		return
	}

	created, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Replenishment scheduling job failed", "error", err)
		return
	}

	if created > 0 {
		j.logger.InfoContext(ctx, "Replenishment scheduling job created orders", "count", created)
	}
}
