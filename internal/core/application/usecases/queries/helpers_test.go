package queries_test

import (
	"io"
	"log/slog"
	"testing"

	"storefront/internal/adapters/out/notify"
	"storefront/internal/adapters/out/progress"
	"storefront/internal/adapters/out/scheduler/schedulertest"
	"storefront/internal/core/application/tracking"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/require"
)

const (
	userKey  = "0f3c9a52-8d1e-4b7a-9c6d-2e5f7a8b9c0d"
	otherKey = "5b2e8c41-7f0a-4d3e-a1b9-6c8d0e2f4a13"
)

type environment struct {
	feed      *notify.Feed
	board     *progress.Board
	scheduler *schedulertest.Manual
	registry  *tracking.Registry
}

func newEnvironment(t *testing.T, store ports.OrderStore) environment {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := environment{
		feed:      notify.NewFeed(notify.DefaultCapacity, logger),
		board:     progress.NewBoard(logger),
		scheduler: &schedulertest.Manual{},
	}

	registry, err := tracking.NewRegistry(tracking.Dependencies{
		Store:       store,
		Notifier:    env.feed,
		Sink:        env.board,
		Scheduler:   env.scheduler,
		Progression: services.DefaultProgression(),
		Logger:      logger,
	})
	require.NoError(t, err)
	t.Cleanup(registry.StopAll)

	env.registry = registry
	return env
}
