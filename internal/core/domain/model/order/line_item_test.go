package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should compute the subtotal", func(t *testing.T) {
		item, err := order.NewLineItem("burger-1", "X-Burger", kernel.Money(2590), 2)

		require.NoError(t, err)
		assert.Equal(t, "burger-1", item.ID())
		assert.Equal(t, kernel.Money(5180), item.Subtotal())
	})

	t.Run("should reject empty identity and bad quantity", func(t *testing.T) {
		_, err := order.NewLineItem(" ", "", kernel.Money(100), 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "item id")
		assert.Contains(t, err.Error(), "item name")
	})

	t.Run("should reject negative prices", func(t *testing.T) {
		_, err := order.NewLineItem("soda", "Soda", kernel.Money(-1), 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
