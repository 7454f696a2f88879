// Package schedulertest provides a ports.Scheduler driven by a virtual clock,
// for tests that need to control exactly when scheduled tasks fire.
package schedulertest

import (
	"sync"
	"time"

	"storefront/internal/core/ports"
)

var _ ports.Scheduler = (*Manual)(nil)

// Manual runs tasks only when the test moves its clock with AdvanceTo.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*task

	// Err, when set, is returned by After.
	Err error
	// IgnoreCancel keeps cancelled tasks runnable, to simulate a timer that
	// fired before it could be cancelled.
	IgnoreCancel bool
}

type task struct {
	at        time.Duration
	run       func()
	cancelled bool
	fired     bool
}

func (s *Manual) After(delay time.Duration, run func()) (ports.CancelFunc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	t := &task{at: s.now + delay, run: run}
	s.tasks = append(s.tasks, t)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.IgnoreCancel {
			t.cancelled = true
		}
	}, nil
}

// AdvanceTo runs every task due at or before at, earliest first, each on
// the calling goroutine.
func (s *Manual) AdvanceTo(at time.Duration) {
	for {
		s.mu.Lock()
		var next *task
		for _, t := range s.tasks {
			if t.fired || t.cancelled || t.at > at {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			if at > s.now {
				s.now = at
			}
			s.mu.Unlock()
			return
		}
		next.fired = true
		s.now = next.at
		s.mu.Unlock()

		next.run()
	}
}

// Pending counts tasks that neither fired nor were cancelled.
func (s *Manual) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := 0
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled {
			pending++
		}
	}
	return pending
}

// Offsets lists the fire time of every task ever scheduled.
func (s *Manual) Offsets() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	offsets := make([]time.Duration, 0, len(s.tasks))
	for _, t := range s.tasks {
		offsets = append(offsets, t.at)
	}
	return offsets
}
