// Package scheduler implements ports.Scheduler on top of robfig/cron.
//
// Each task becomes a cron entry with a schedule that yields its fire time
// once and then never again, so cron runs it exactly one time. Cancelling
// removes the entry.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

var ErrSchedulerStopped = errors.New("scheduler is stopped")

var _ ports.Scheduler = (*CronScheduler)(nil)

type CronScheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	stopped atomic.Bool
}

func NewCronScheduler(logger *slog.Logger) *CronScheduler {
	logger = logger.With("component", "cron_scheduler")
	return &CronScheduler{
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cronLogger{logger: logger}))),
		logger: logger,
	}
}

// After registers task to run once, delay from now.
func (s *CronScheduler) After(delay time.Duration, task func()) (ports.CancelFunc, error) {
	if s.stopped.Load() {
		return nil, ErrSchedulerStopped
	}

	id := s.cron.Schedule(&once{at: time.Now().Add(delay)}, cron.FuncJob(task))
	return func() { s.cron.Remove(id) }, nil
}

// Pending is the number of entries that still have a fire time.
func (s *CronScheduler) Pending() int {
	pending := 0
	for _, entry := range s.cron.Entries() {
		if !entry.Next.IsZero() {
			pending++
		}
	}
	return pending
}

func (s *CronScheduler) Start() {
	s.cron.Start()
	s.logger.InfoContext(context.Background(), "Scheduler started")
}

// Stop refuses new tasks, drops the pending ones and returns a context that
// is done once running tasks have returned.
func (s *CronScheduler) Stop() context.Context {
	s.stopped.Store(true)
	ctx := s.cron.Stop()
	for _, entry := range s.cron.Entries() {
		s.cron.Remove(entry.ID)
	}
	s.logger.InfoContext(context.Background(), "Scheduler stopped")
	return ctx
}

// once yields at on its first call and the zero time afterwards, which cron
// treats as "never".
type once struct {
	at    time.Time
	fired atomic.Bool
}

func (o *once) Next(time.Time) time.Time {
	if o.fired.CompareAndSwap(false, true) {
		return o.at
	}
	return time.Time{}
}

// cronLogger routes cron's own messages, such as recovered panics, to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
