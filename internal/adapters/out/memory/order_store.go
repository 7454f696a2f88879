// Package memory implements ports.OrderStore in process memory. It backs local
// runs and tests and plays the role of the browser storage the storefront
// uses when no database is configured.
package memory

import (
	"context"
	"slices"
	"sync"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

var _ ports.OrderStore = (*OrderStore)(nil)

// OrderStore keeps snapshots, never live orders, so callers cannot mutate
// stored state through a pointer they still hold.
type OrderStore struct {
	mu      sync.RWMutex
	current map[string]order.Snapshot
	history map[string][]order.Snapshot
	global  []order.Snapshot
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		current: make(map[string]order.Snapshot),
		history: make(map[string][]order.Snapshot),
	}
}

func (s *OrderStore) ReadCurrentOrder(_ context.Context, userKey string) (*order.Order, error) {
	s.mu.RLock()
	snapshot, ok := s.current[userKey]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("current order", userKey)
	}
	return order.RestoreOrder(snapshot)
}

func (s *OrderStore) WriteCurrentOrder(_ context.Context, userKey string, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[userKey] = o.Snapshot()
	return nil
}

func (s *OrderStore) AppendToHistory(_ context.Context, userKey string, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.history[userKey]
	if indexOf(entries, o.Number()) >= 0 {
		return nil
	}
	s.history[userKey] = append(entries, o.Snapshot())
	return nil
}

func (s *OrderStore) AppendToGlobalHistory(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.global, o.Number()) >= 0 {
		return nil
	}
	s.global = append(s.global, o.Snapshot())
	return nil
}

func (s *OrderStore) UpdateHistoryRating(
	_ context.Context,
	userKey, orderNumber string,
	rating kernel.Rating,
) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	if i := indexOf(s.history[userKey], orderNumber); i >= 0 {
		s.history[userKey][i].Rating = rating
		found = true
	}
	if i := indexOf(s.global, orderNumber); i >= 0 {
		s.global[i].Rating = rating
		found = true
	}
	if !found {
		return errs.NewObjectNotFoundError("history entry", orderNumber)
	}
	return nil
}

func (s *OrderStore) ListHistory(_ context.Context, userKey string) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return restoreNewestFirst(s.history[userKey])
}

func (s *OrderStore) ListGlobalHistory(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return restoreNewestFirst(s.global)
}

func indexOf(entries []order.Snapshot, number string) int {
	return slices.IndexFunc(entries, func(e order.Snapshot) bool {
		return e.Number == number
	})
}

func restoreNewestFirst(entries []order.Snapshot) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		o, err := order.RestoreOrder(entries[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
