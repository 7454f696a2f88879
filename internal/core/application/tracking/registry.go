package tracking

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/core/domain/model/order"
)

// Registry owns the live trackers, at most one per user.
type Registry struct {
	mu       sync.Mutex
	deps     Dependencies
	trackers map[string]*Tracker
	logger   *slog.Logger
}

func NewRegistry(deps Dependencies) (*Registry, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	return &Registry{
		deps:     deps,
		trackers: make(map[string]*Tracker),
		logger:   deps.Logger.With("component", "tracker_registry"),
	}, nil
}

// Track returns the running tracker of o when there is one, so a tracker is
// built at most once per order. A tracker for another order of the same user,
// or a stopped tracker of o, is replaced by a freshly started one.
func (r *Registry) Track(ctx context.Context, userKey string, o *order.Order) (*Tracker, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.trackers[userKey]; ok {
		if existing.OrderNumber() == o.Number() && !existing.Stopped() {
			return existing, nil
		}
		existing.Stop()
		delete(r.trackers, userKey)
	}

	tracker, err := NewTracker(r.deps, userKey, o)
	if err != nil {
		return nil, err
	}
	if err = tracker.Start(ctx); err != nil {
		return nil, err
	}

	r.trackers[userKey] = tracker
	r.logger.DebugContext(ctx, "Tracker registered", "user_key", userKey, "order_number", o.Number())
	return tracker, nil
}

func (r *Registry) Get(userKey string) (*Tracker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tracker, ok := r.trackers[userKey]
	return tracker, ok
}

// Stop stops and forgets the user's tracker. It reports whether there was one.
func (r *Registry) Stop(userKey string) bool {
	r.mu.Lock()
	tracker, ok := r.trackers[userKey]
	delete(r.trackers, userKey)
	r.mu.Unlock()

	if ok {
		tracker.Stop()
	}
	return ok
}

// Sweep forgets every finished tracker and returns how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for userKey, tracker := range r.trackers {
		if !tracker.Finished() {
			continue
		}
		tracker.Stop()
		delete(r.trackers, userKey)
		dropped++
	}
	return dropped
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.trackers)
}

// StopAll stops every tracker, used on shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	trackers := r.trackers
	r.trackers = make(map[string]*Tracker)
	r.mu.Unlock()

	for _, tracker := range trackers {
		tracker.Stop()
	}
}
