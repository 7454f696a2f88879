package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/adapters/out/memory"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/order/ordertest"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackOrderCommand(t *testing.T) {
	_, err := commands.NewTrackOrderCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewTrackOrderCommand(userKey)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, userKey, cmd.UserKey())

	require.ErrorIs(t, commands.TrackOrderCommand{}.Validate(), commands.ErrTrackOrderCommandIsNotConstructed)
}

func TestTrackOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should start tracking the stored order", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		store := memory.NewOrderStore()
		require.NoError(t, store.WriteCurrentOrder(ctx, userKey, ordertest.New(t, "PED-0000A001", order.Preparing)))
		registry, scheduler := newRegistry(t, store, new(MockNotifier))
		handler := commands.NewTrackOrderCommandHandler(store, registry, discardLogger())
		cmd, err := commands.NewTrackOrderCommand(userKey)
		require.NoError(t, err)

		// Act
		result, err := handler.Handle(ctx, cmd)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "PED-0000A001", result.Order.Number())
		assert.Equal(t, order.Preparing, result.Order.Status())
		assert.True(t, result.Tracking)
		assert.False(t, result.ShowRatingPrompt)
		assert.Equal(t, 3, scheduler.Pending())
	})

	t.Run("should reuse the running tracker", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		store := memory.NewOrderStore()
		require.NoError(t, store.WriteCurrentOrder(ctx, userKey, ordertest.New(t, "PED-0000A002", order.Pending)))
		registry, scheduler := newRegistry(t, store, new(MockNotifier))
		handler := commands.NewTrackOrderCommandHandler(store, registry, discardLogger())
		cmd, err := commands.NewTrackOrderCommand(userKey)
		require.NoError(t, err)

		// Act
		_, err = handler.Handle(ctx, cmd)
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, registry.Len())
		assert.Equal(t, 5, scheduler.Pending())
	})

	t.Run("should prompt for a rating of an unrated delivered order", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		store := memory.NewOrderStore()
		require.NoError(t, store.WriteCurrentOrder(ctx, userKey, ordertest.Delivered(t, "PED-0000A003", kernel.Rating(0))))
		registry, scheduler := newRegistry(t, store, new(MockNotifier))
		handler := commands.NewTrackOrderCommandHandler(store, registry, discardLogger())
		cmd, err := commands.NewTrackOrderCommand(userKey)
		require.NoError(t, err)

		// Act
		result, err := handler.Handle(ctx, cmd)

		// Assert
		require.NoError(t, err)
		assert.False(t, result.Tracking)
		assert.True(t, result.ShowRatingPrompt)
		assert.Zero(t, scheduler.Pending())
	})

	t.Run("should report no current order when nothing is stored", func(t *testing.T) {
		// Arrange
		store := memory.NewOrderStore()
		registry, _ := newRegistry(t, store, new(MockNotifier))
		handler := commands.NewTrackOrderCommandHandler(store, registry, discardLogger())
		cmd, err := commands.NewTrackOrderCommand(userKey)
		require.NoError(t, err)

		// Act
		_, err = handler.Handle(t.Context(), cmd)

		// Assert
		require.ErrorIs(t, err, commands.ErrNoCurrentOrder)
		assert.Zero(t, registry.Len())
	})

	t.Run("should report no current order when the stored one is malformed", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		store := new(MockOrderStore)
		store.On("ReadCurrentOrder", ctx, userKey).Return(nil, errs.NewValueIsRequiredError("items")).Once()
		registry, _ := newRegistry(t, store, new(MockNotifier))
		handler := commands.NewTrackOrderCommandHandler(store, registry, discardLogger())
		cmd, err := commands.NewTrackOrderCommand(userKey)
		require.NoError(t, err)

		// Act
		_, err = handler.Handle(ctx, cmd)

		// Assert
		require.ErrorIs(t, err, commands.ErrNoCurrentOrder)
		store.AssertExpectations(t)
	})

	t.Run("should return store failures as they are", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		storeErr := errors.New("read timeout")
		store := new(MockOrderStore)
		store.On("ReadCurrentOrder", ctx, userKey).Return(nil, storeErr).Once()
		registry, _ := newRegistry(t, store, new(MockNotifier))
		handler := commands.NewTrackOrderCommandHandler(store, registry, discardLogger())
		cmd, err := commands.NewTrackOrderCommand(userKey)
		require.NoError(t, err)

		// Act
		_, err = handler.Handle(ctx, cmd)

		// Assert
		require.ErrorIs(t, err, storeErr)
		require.NotErrorIs(t, err, commands.ErrNoCurrentOrder)
		store.AssertExpectations(t)
	})
}
