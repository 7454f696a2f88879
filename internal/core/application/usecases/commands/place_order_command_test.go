package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkout struct {
	restaurant order.Restaurant
	items      []order.LineItem
	address    kernel.Address
	payment    order.Payment
}

func newCheckout(t *testing.T) checkout {
	t.Helper()

	pizza, err := order.NewLineItem("pizza-m", "Pizza margherita", kernel.Money(5290), 1)
	require.NoError(t, err)
	soda, err := order.NewLineItem("soda", "Guaraná 350ml", kernel.Money(590), 2)
	require.NoError(t, err)
	address, err := kernel.NewAddress(kernel.AddressFields{Street: "Av. Paulista", Number: "1000", City: "São Paulo", State: "SP"})
	require.NoError(t, err)
	payment, err := order.NewPayment(order.Pix, "", "")
	require.NoError(t, err)

	return checkout{
		restaurant: order.Restaurant{ID: "rest-42", Name: "Pizzaria Napoli"},
		items:      []order.LineItem{pizza, soda},
		address:    address,
		payment:    payment,
	}
}

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should default to pending", func(t *testing.T) {
		c := newCheckout(t)

		cmd, err := commands.NewPlaceOrderCommand(userKey, c.restaurant, c.items, c.address, c.payment, order.Unknown)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.Pending, cmd.StartStatus())
		assert.Equal(t, userKey, cmd.UserKey())
		assert.Len(t, cmd.Items(), 2)
		assert.Equal(t, order.Pix, cmd.Payment().Method())
	})

	t.Run("should accept a later start status", func(t *testing.T) {
		c := newCheckout(t)

		cmd, err := commands.NewPlaceOrderCommand(userKey, c.restaurant, c.items, c.address, c.payment, order.Preparing)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, cmd.StartStatus())
	})

	t.Run("should reject delivered as start status", func(t *testing.T) {
		c := newCheckout(t)

		_, err := commands.NewPlaceOrderCommand(userKey, c.restaurant, c.items, c.address, c.payment, order.Delivered)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collect every missing field", func(t *testing.T) {
		c := newCheckout(t)

		_, err := commands.NewPlaceOrderCommand("", order.Restaurant{}, nil, kernel.Address{}, c.payment, order.Status(42))

		require.Error(t, err)
		for _, fragment := range []string{"user key", "restaurant id", "items", "address", "42"} {
			assert.Contains(t, err.Error(), fragment)
		}
	})

	t.Run("should not share the item slice", func(t *testing.T) {
		c := newCheckout(t)
		cmd, err := commands.NewPlaceOrderCommand(userKey, c.restaurant, c.items, c.address, c.payment, order.Pending)
		require.NoError(t, err)

		c.items[0] = c.items[1]

		assert.Equal(t, "pizza-m", cmd.Items()[0].ID())
	})
}
