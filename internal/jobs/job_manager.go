package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// TransitionScheduler is the cron scheduler that fires order transitions.
type TransitionScheduler interface {
	Start()
	Stop() context.Context
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduler       TransitionScheduler
	trackerSweepJob *TrackerSweepJob
}

// NewJobManager sweeps the registry every minute.
func NewJobManager(sweeper Sweeper, scheduler TransitionScheduler, logger *slog.Logger) *JobManager {
	return NewJobManagerWithSchedule(sweeper, scheduler, SweepEveryMinute, logger)
}

func NewJobManagerWithSchedule(
	sweeper Sweeper,
	scheduler TransitionScheduler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		scheduler:       scheduler,
		trackerSweepJob: NewTrackerSweepJob(sweeper, sweepSchedule, logger),
	}
}

// StartAll starts the transition scheduler and the sweep job.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	jm.scheduler.Start()

	if err := jm.trackerSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		<-jm.scheduler.Stop().Done()
		return fmt.Errorf("failed to start tracker sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackerSweepJob.Stop()
	<-jm.scheduler.Stop().Done()
}
