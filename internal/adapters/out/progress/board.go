// Package progress holds what the order tracking page renders: the latest
// state of each user's order and whether the delivery celebration is due.
package progress

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

var (
	_ ports.ProgressSink      = (*Board)(nil)
	_ ports.CelebrationSource = (*Board)(nil)
)

type entry struct {
	order     *order.Order
	celebrate bool
}

type Board struct {
	mu      sync.Mutex
	entries map[string]*entry
	logger  *slog.Logger
}

func NewBoard(logger *slog.Logger) *Board {
	return &Board{
		entries: make(map[string]*entry),
		logger:  logger.With("component", "progress_board"),
	}
}

func (b *Board) OnProgress(ctx context.Context, userKey string, o *order.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entry(userKey).order = o
	b.logger.DebugContext(ctx, "Progress published",
		"user_key", userKey,
		"order_number", o.Number(),
		"status", o.Status().String())
}

func (b *Board) OnTerminalReached(ctx context.Context, userKey string, o *order.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.entry(userKey)
	e.order = o
	e.celebrate = true
	b.logger.InfoContext(ctx, "Order delivered", "user_key", userKey, "order_number", o.Number())
}

// Latest returns the last order published for the user.
func (b *Board) Latest(userKey string) (*order.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[userKey]
	if !ok || e.order == nil {
		return nil, false
	}
	return e.order.Clone(), true
}

// TakeCelebration reports whether the delivery celebration is pending and
// clears it, so it plays once.
func (b *Board) TakeCelebration(userKey string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[userKey]
	if !ok || !e.celebrate {
		return false
	}
	e.celebrate = false
	return true
}

// Forget drops everything held for the user.
func (b *Board) Forget(userKey string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, userKey)
}

func (b *Board) entry(userKey string) *entry {
	e, ok := b.entries[userKey]
	if !ok {
		e = &entry{}
		b.entries[userKey] = e
	}
	return e
}
