package progress_test

import (
	"io"
	"log/slog"
	"testing"

	"storefront/internal/adapters/out/progress"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/order/ordertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard() *progress.Board {
	return progress.NewBoard(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBoard(t *testing.T) {
	t.Run("should keep the latest order per user", func(t *testing.T) {
		board := newBoard()

		board.OnProgress(t.Context(), "user-1", ordertest.New(t, "PED-00000001", order.Ready))
		board.OnProgress(t.Context(), "user-1", ordertest.New(t, "PED-00000001", order.Delivering))

		latest, ok := board.Latest("user-1")
		require.True(t, ok)
		assert.Equal(t, order.Delivering, latest.Status())
		_, ok = board.Latest("user-2")
		assert.False(t, ok)
	})

	t.Run("should celebrate once per delivery", func(t *testing.T) {
		board := newBoard()
		assert.False(t, board.TakeCelebration("user-1"))

		board.OnTerminalReached(t.Context(), "user-1", ordertest.Delivered(t, "PED-00000001", 0))

		assert.True(t, board.TakeCelebration("user-1"))
		assert.False(t, board.TakeCelebration("user-1"))
		latest, ok := board.Latest("user-1")
		require.True(t, ok)
		assert.Equal(t, order.Delivered, latest.Status())
	})

	t.Run("should forget a user", func(t *testing.T) {
		board := newBoard()
		board.OnTerminalReached(t.Context(), "user-1", ordertest.Delivered(t, "PED-00000001", 0))

		board.Forget("user-1")

		assert.False(t, board.TakeCelebration("user-1"))
		_, ok := board.Latest("user-1")
		assert.False(t, ok)
	})
}
