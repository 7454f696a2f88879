package tracking_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/adapters/out/memory"
	"storefront/internal/adapters/out/scheduler/schedulertest"
	"storefront/internal/core/application/tracking"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userKey = "0b7e8a52-1f4d-4c55-9a2e-3f0d5b6c7e81"

var testETAs = map[order.Status]string{
	order.Pending:    "40-50 min",
	order.Confirmed:  "35-45 min",
	order.Preparing:  "25-35 min",
	order.Ready:      "15-20 min",
	order.Delivering: "5-10 min",
	order.Delivered:  "Entregue",
}

func newProgression(t *testing.T, delays map[order.Status]time.Duration) services.Progression {
	t.Helper()

	p, err := services.NewProgression(delays, testETAs)
	require.NoError(t, err)
	return p
}

// preparingProgression is the table of the worked example: starting at
// preparing, transitions fire at 1.2s, 3.2s and 6s.
func preparingProgression(t *testing.T) services.Progression {
	return newProgression(t, map[order.Status]time.Duration{
		order.Ready:      1200 * time.Millisecond,
		order.Delivering: 2000 * time.Millisecond,
		order.Delivered:  2800 * time.Millisecond,
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store     *memory.OrderStore
	notifier  *recordingNotifier
	sink      *recordingSink
	scheduler *schedulertest.Manual
}

func newFixture() *fixture {
	return &fixture{
		store:     memory.NewOrderStore(),
		notifier:  &recordingNotifier{},
		sink:      &recordingSink{},
		scheduler: &schedulertest.Manual{},
	}
}

func (f *fixture) deps(p services.Progression) tracking.Dependencies {
	return tracking.Dependencies{
		Store:       f.store,
		Notifier:    f.notifier,
		Sink:        f.sink,
		Scheduler:   f.scheduler,
		Progression: p,
		Logger:      discardLogger(),
	}
}

type notification struct {
	UserKey string
	Message string
	Kind    ports.NotificationKind
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *recordingNotifier) Notify(_ context.Context, userKey, message string, kind ports.NotificationKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{UserKey: userKey, Message: message, Kind: kind})
}

func (n *recordingNotifier) Kinds() []ports.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()

	kinds := make([]ports.NotificationKind, 0, len(n.sent))
	for _, s := range n.sent {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

type recordingSink struct {
	mu       sync.Mutex
	statuses []order.Status
	terminal []*order.Order
}

func (s *recordingSink) OnProgress(_ context.Context, _ string, o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, o.Status())
}

func (s *recordingSink) OnTerminalReached(_ context.Context, _ string, o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminal = append(s.terminal, o)
}

func (s *recordingSink) Statuses() []order.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]order.Status(nil), s.statuses...)
}

func (s *recordingSink) TerminalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.terminal)
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) ReadCurrentOrder(ctx context.Context, userKey string) (*order.Order, error) {
	args := m.Called(ctx, userKey)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) WriteCurrentOrder(ctx context.Context, userKey string, o *order.Order) error {
	args := m.Called(ctx, userKey, o)
	return args.Error(0)
}

func (m *MockOrderStore) AppendToHistory(ctx context.Context, userKey string, o *order.Order) error {
	args := m.Called(ctx, userKey, o)
	return args.Error(0)
}

func (m *MockOrderStore) AppendToGlobalHistory(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) UpdateHistoryRating(
	ctx context.Context,
	userKey, orderNumber string,
	rating kernel.Rating,
) error {
	args := m.Called(ctx, userKey, orderNumber, rating)
	return args.Error(0)
}

func (m *MockOrderStore) ListHistory(ctx context.Context, userKey string) ([]*order.Order, error) {
	args := m.Called(ctx, userKey)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderStore) ListGlobalHistory(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}
