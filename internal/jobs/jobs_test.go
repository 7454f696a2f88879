package jobs_test

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/adapters/out/scheduler"
	"storefront/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 1
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrackerSweepJob(t *testing.T) {
	t.Run("should sweep on schedule", func(t *testing.T) {
		sweeper := &countingSweeper{}
		job := jobs.NewTrackerSweepJob(sweeper, "* * * * * *", discardLogger())

		require.NoError(t, job.Start())
		defer job.Stop()

		assert.Eventually(t, func() bool { return sweeper.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewTrackerSweepJob(&countingSweeper{}, "every minute", discardLogger())

		require.Error(t, job.Start())
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should run the scheduler until stopped", func(t *testing.T) {
		cronScheduler := scheduler.NewCronScheduler(discardLogger())
		manager := jobs.NewJobManager(&countingSweeper{}, cronScheduler, discardLogger())
		require.NoError(t, manager.StartAll())

		fired := make(chan struct{})
		_, err := cronScheduler.After(10*time.Millisecond, func() { close(fired) })
		require.NoError(t, err)

		select {
		case <-fired:
		case <-time.After(3 * time.Second):
			t.Fatal("scheduled task did not run")
		}

		manager.StopAll()
		_, err = cronScheduler.After(time.Millisecond, func() {})
		require.ErrorIs(t, err, scheduler.ErrSchedulerStopped)
	})

	t.Run("should stop the scheduler when the sweep job cannot start", func(t *testing.T) {
		cronScheduler := scheduler.NewCronScheduler(discardLogger())
		manager := jobs.NewJobManagerWithSchedule(&countingSweeper{}, cronScheduler, "not a schedule", discardLogger())

		require.Error(t, manager.StartAll())

		_, err := cronScheduler.After(time.Millisecond, func() {})
		require.ErrorIs(t, err, scheduler.ErrSchedulerStopped)
	})
}
