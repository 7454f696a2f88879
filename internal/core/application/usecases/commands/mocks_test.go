package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/adapters/out/progress"
	"storefront/internal/adapters/out/scheduler/schedulertest"
	"storefront/internal/core/application/tracking"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userKey = "7a6b5c4d-3e2f-4a1b-8c9d-0e1f2a3b4c5d"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRegistry(t *testing.T, store ports.OrderStore, notifier ports.Notifier) (*tracking.Registry, *schedulertest.Manual) {
	t.Helper()

	scheduler := &schedulertest.Manual{}
	registry, err := tracking.NewRegistry(tracking.Dependencies{
		Store:       store,
		Notifier:    notifier,
		Sink:        progress.NewBoard(discardLogger()),
		Scheduler:   scheduler,
		Progression: services.DefaultProgression(),
		Logger:      discardLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(registry.StopAll)
	return registry, scheduler
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

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, userKey, message string, kind ports.NotificationKind) {
	m.Called(ctx, userKey, message, kind)
}
