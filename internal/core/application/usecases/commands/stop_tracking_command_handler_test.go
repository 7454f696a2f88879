package commands_test

import (
	"testing"

	"storefront/internal/adapters/out/memory"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/order/ordertest"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopTrackingCommandHandler_Handle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	store := memory.NewOrderStore()
	registry, scheduler := newRegistry(t, store, new(MockNotifier))
	_, err := registry.Track(ctx, userKey, ordertest.New(t, "PED-0000C001", order.Confirmed))
	require.NoError(t, err)
	require.Equal(t, 4, scheduler.Pending())

	handler := commands.NewStopTrackingCommandHandler(registry, discardLogger())
	cmd, err := commands.NewStopTrackingCommand(userKey)
	require.NoError(t, err)

	// Act
	first, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	second, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	// Assert
	assert.True(t, first)
	assert.False(t, second)
	assert.Zero(t, scheduler.Pending())
	assert.Zero(t, registry.Len())
}

func TestNewStopTrackingCommand(t *testing.T) {
	_, err := commands.NewStopTrackingCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.StopTrackingCommandHandler{}.Handle(t.Context(), commands.StopTrackingCommand{})
	require.ErrorIs(t, err, commands.ErrStopTrackingCommandIsNotConstructed)
}
