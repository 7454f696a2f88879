// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TrackerSweepJob - Runs every minute and drops finished or stopped
// order trackers from the registry
//
// # Usage
//
// Jobs are managed through JobManager, which also owns the lifetime of the
// cron scheduler that fires order status transitions:
//
//	jobManager := jobs.NewJobManager(registry, scheduler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Shutdown
//
// StopAll stops the sweep job first and then the transition scheduler,
// waiting for transitions that are already running.
package jobs
