package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/adapters/out/memory"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/order/ordertest"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReadStore struct {
	*memory.OrderStore
	err error
}

func (s failingReadStore) ReadCurrentOrder(context.Context, string) (*order.Order, error) {
	return nil, s.err
}

func TestNewGetCurrentOrderQuery(t *testing.T) {
	_, err := queries.NewGetCurrentOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetCurrentOrderQuery(userKey)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	require.ErrorIs(t, queries.GetCurrentOrderQuery{}.Validate(), queries.ErrGetCurrentOrderQueryIsNotConstructed)
}

func TestGetCurrentOrderQueryHandler_Handle(t *testing.T) {
	t.Run("should read the live tracker", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		store := memory.NewOrderStore()
		env := newEnvironment(t, store)
		_, err := env.registry.Track(ctx, userKey, ordertest.New(t, "PED-0000D001", order.Pending))
		require.NoError(t, err)
		env.scheduler.AdvanceTo(8 * time.Second)

		handler := queries.NewGetCurrentOrderQueryHandler(store, env.registry)
		query, err := queries.NewGetCurrentOrderQuery(userKey)
		require.NoError(t, err)

		// Act
		current, err := handler.Handle(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, current.Order.Status())
		assert.Equal(t, "25-35 min", current.Order.EstimatedDelivery())
		assert.True(t, current.Tracking)
		assert.False(t, current.ShowRatingPrompt)
	})

	t.Run("should fall back to the store without a tracker", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		store := memory.NewOrderStore()
		require.NoError(t, store.WriteCurrentOrder(ctx, userKey, ordertest.Delivered(t, "PED-0000D002", kernel.Rating(0))))
		env := newEnvironment(t, store)
		handler := queries.NewGetCurrentOrderQueryHandler(store, env.registry)
		query, err := queries.NewGetCurrentOrderQuery(userKey)
		require.NoError(t, err)

		// Act
		current, err := handler.Handle(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "PED-0000D002", current.Order.Number())
		assert.True(t, current.ShowRatingPrompt)
		assert.False(t, current.Tracking)
	})

	t.Run("should not prompt for a rated order", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		store := memory.NewOrderStore()
		require.NoError(t, store.WriteCurrentOrder(ctx, userKey, ordertest.Delivered(t, "PED-0000D003", kernel.Rating(3))))
		env := newEnvironment(t, store)
		handler := queries.NewGetCurrentOrderQueryHandler(store, env.registry)
		query, err := queries.NewGetCurrentOrderQuery(userKey)
		require.NoError(t, err)

		// Act
		current, err := handler.Handle(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.False(t, current.ShowRatingPrompt)
	})

	t.Run("should report a missing order as not found", func(t *testing.T) {
		store := memory.NewOrderStore()
		env := newEnvironment(t, store)
		handler := queries.NewGetCurrentOrderQueryHandler(store, env.registry)
		query, err := queries.NewGetCurrentOrderQuery(userKey)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should report a malformed order as not found", func(t *testing.T) {
		ratedEarly := ordertest.New(t, "PED-0000D009", order.Preparing).Snapshot()
		ratedEarly.Rating = kernel.Rating(3)
		_, ratedEarlyErr := order.RestoreOrder(ratedEarly)
		require.Error(t, ratedEarlyErr)

		tests := []struct {
			name string
			err  error
		}{
			{name: "missing items", err: errs.NewValueIsRequiredError("items")},
			{name: "rated before delivery", err: ratedEarlyErr},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := failingReadStore{OrderStore: memory.NewOrderStore(), err: tt.err}
				env := newEnvironment(t, store)
				handler := queries.NewGetCurrentOrderQueryHandler(store, env.registry)
				query, err := queries.NewGetCurrentOrderQuery(userKey)
				require.NoError(t, err)

				_, err = handler.Handle(t.Context(), query)

				require.ErrorIs(t, err, errs.ErrObjectNotFound)
			})
		}
	})

	t.Run("should return store failures as they are", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		store := failingReadStore{OrderStore: memory.NewOrderStore(), err: storeErr}
		env := newEnvironment(t, store)
		handler := queries.NewGetCurrentOrderQueryHandler(store, env.registry)
		query, err := queries.NewGetCurrentOrderQuery(userKey)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, storeErr)
		require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
