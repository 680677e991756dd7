// Package jobs provides scheduled background tasks for the replenishment
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the replenishment service.
//
// # Available Jobs
//
// 1. ReplenishmentSchedulingJob - Runs on a configurable cron schedule to
// create standard orders for every client whose periodicity has elapsed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(scheduleDueOrdersHandler, cronSpec, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The scheduling job takes a standard five-field cron expression. The
// default "0 6 * * *" runs once a day at 06:00 so orders exist before the
// warehouse picks.
//
// # Error Handling
//
// Per-client allocation failures are handled inside the command handler and
// never abort the run; only infrastructure failures surface here and are
// logged.
package jobs
