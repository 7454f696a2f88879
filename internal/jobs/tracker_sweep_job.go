package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// SweepEveryMinute fires at second zero of every minute.
const SweepEveryMinute = "0 * * * * *"

// Sweeper forgets trackers that have nothing left to do.
type Sweeper interface {
	Sweep() int
}

// TrackerSweepJob keeps the tracker registry from growing with every order
// that was delivered or whose view was torn down.
type TrackerSweepJob struct {
	sweeper  Sweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTrackerSweepJob creates a sweep job on a six-field cron schedule such
// as SweepEveryMinute.
func NewTrackerSweepJob(sweeper Sweeper, schedule string, logger *slog.Logger) *TrackerSweepJob {
	return &TrackerSweepJob{
		sweeper:  sweeper,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "tracker_sweep_job"),
	}
}

func (j *TrackerSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if dropped := j.sweeper.Sweep(); dropped > 0 {
			j.logger.DebugContext(context.Background(), "Finished trackers dropped", "count", dropped)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracker sweep job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *TrackerSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Tracker sweep job stopped")
}
