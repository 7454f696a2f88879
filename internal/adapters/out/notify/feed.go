// Package notify keeps the toast messages shown to each customer until the
// storefront page collects them.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/core/ports"
)

// DefaultCapacity is how many undelivered messages are kept per user.
const DefaultCapacity = 20

var (
	_ ports.Notifier          = (*Feed)(nil)
	_ ports.NotificationInbox = (*Feed)(nil)
)

// Feed is a bounded per-user queue: when full, the oldest message is dropped.
type Feed struct {
	mu       sync.Mutex
	capacity int
	queues   map[string][]ports.Notification
	logger   *slog.Logger
	now      func() time.Time
}

func NewFeed(capacity int, logger *slog.Logger) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		capacity: capacity,
		queues:   make(map[string][]ports.Notification),
		logger:   logger.With("component", "notification_feed"),
		now:      time.Now,
	}
}

func (f *Feed) Notify(ctx context.Context, userKey, message string, kind ports.NotificationKind) {
	level := slog.LevelInfo
	if kind != ports.NotificationSuccess {
		level = slog.LevelWarn
	}
	f.logger.Log(ctx, level, "Customer notified", "user_key", userKey, "kind", string(kind), "message", message)

	f.mu.Lock()
	defer f.mu.Unlock()

	queue := append(f.queues[userKey], ports.Notification{Message: message, Kind: kind, CreatedAt: f.now()})
	if len(queue) > f.capacity {
		queue = queue[len(queue)-f.capacity:]
	}
	f.queues[userKey] = queue
}

// Drain returns the user's pending messages, oldest first, and forgets them.
func (f *Feed) Drain(userKey string) []ports.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	queue := f.queues[userKey]
	delete(f.queues, userKey)
	if queue == nil {
		return []ports.Notification{}
	}
	return queue
}
