// Package jobs provides scheduled background tasks for the cafe delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. CourierDispatchJob - Runs every fifteen seconds to offer the oldest
// order awaiting a courier to the best available candidate.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job ignores expected business outcomes: an empty backlog,
// an empty courier roster, and losing a race against a courier who
// accepted the order manually. Everything else is logged.
package jobs
