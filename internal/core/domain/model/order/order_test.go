package order_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	burger, err := order.NewLineItem("burger", "X-Salada", kernel.Money(2490), 2)
	require.NoError(t, err)
	fries, err := order.NewLineItem("fries", "Batata frita", kernel.Money(1290), 1)
	require.NoError(t, err)
	address, err := kernel.NewAddress(kernel.AddressFields{Street: "Rua das Flores", Number: "42", City: "Curitiba"})
	require.NoError(t, err)
	payment, err := order.NewPayment(order.CreditCard, "5555444433331111", "Ana Souza")
	require.NoError(t, err)

	o, err := order.NewOrder(
		"PED-0001",
		order.Restaurant{ID: "rest-7", Name: "Lanchonete da Esquina"},
		[]order.LineItem{burger, fries},
		address,
		payment,
		status,
		"30-40 min",
		placedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should compute and freeze the total", func(t *testing.T) {
		o := newTestOrder(t, order.Pending)

		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.Money(2*2490+1290), o.Total())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "30-40 min", o.EstimatedDelivery())
		assert.False(t, o.Rating().IsSet())
		assert.Equal(t, "1111", o.Payment().Details().Last4)
		assert.Equal(t, placedAt, o.PlacedAt())
	})

	t.Run("should accept a later starting status", func(t *testing.T) {
		o := newTestOrder(t, order.Preparing)

		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		o, err := order.NewOrder("", order.Restaurant{}, nil, kernel.Address{}, order.Payment{}, order.Unknown, "", time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		for _, fragment := range []string{"order number", "restaurant id", "items", "placed at", "address must be created", "status"} {
			assert.Contains(t, err.Error(), fragment)
		}
	})
}

func TestNewNumber(t *testing.T) {
	n1 := order.NewNumber()
	n2 := order.NewNumber()

	assert.Regexp(t, `^PED-[0-9A-F]{8}$`, n1)
	assert.NotEqual(t, n1, n2)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the stored total even if prices changed", func(t *testing.T) {
		snap := newTestOrder(t, order.Delivering).Snapshot()
		snap.Total = kernel.Money(1)

		o, err := order.RestoreOrder(snap)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(1), o.Total())
	})

	t.Run("should reject a rating on an undelivered order", func(t *testing.T) {
		snap := newTestOrder(t, order.Ready).Snapshot()
		snap.Rating = kernel.Rating(4)

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, order.ErrRatingBeforeDelivery)
	})

	t.Run("should reject an out of range rating", func(t *testing.T) {
		snap := newTestOrder(t, order.Delivered).Snapshot()
		snap.Rating = kernel.Rating(6)

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestIsMalformed(t *testing.T) {
	ratedEarly := newTestOrder(t, order.Confirmed).Snapshot()
	ratedEarly.Rating = kernel.Rating(2)
	_, ratedEarlyErr := order.RestoreOrder(ratedEarly)

	noItems := newTestOrder(t, order.Confirmed).Snapshot()
	noItems.Items = nil
	_, noItemsErr := order.RestoreOrder(noItems)

	assert.True(t, order.IsMalformed(ratedEarlyErr))
	assert.True(t, order.IsMalformed(noItemsErr))
	assert.True(t, order.IsMalformed(fmt.Errorf("read row: %w", errs.NewValueIsInvalidError("status"))))
	assert.False(t, order.IsMalformed(errs.NewObjectNotFoundError("current order", "u1")))
	assert.False(t, order.IsMalformed(errors.New("connection reset")))
	assert.False(t, order.IsMalformed(nil))
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	var zero order.Order

	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should move forward and replace the estimate", func(t *testing.T) {
		o := newTestOrder(t, order.Preparing)

		require.NoError(t, o.Advance(order.Ready, "15-20 min"))

		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, "15-20 min", o.EstimatedDelivery())
	})

	t.Run("should never move backwards", func(t *testing.T) {
		o := newTestOrder(t, order.Delivering)

		err := o.Advance(order.Ready, "15-20 min")

		require.Error(t, err)
		assert.Equal(t, order.Delivering, o.Status())
		assert.Equal(t, "30-40 min", o.EstimatedDelivery())
	})
}

func TestOrder_Rate(t *testing.T) {
	four := kernel.Rating(4)

	t.Run("should reject ratings before delivery", func(t *testing.T) {
		o := newTestOrder(t, order.Delivering)

		require.ErrorIs(t, o.Rate(four), order.ErrRatingBeforeDelivery)
		assert.False(t, o.Rating().IsSet())
		assert.False(t, o.CanBeRated())
	})

	t.Run("should rate a delivered order once", func(t *testing.T) {
		o := newTestOrder(t, order.Delivered)
		require.True(t, o.CanBeRated())

		require.NoError(t, o.Rate(four))
		assert.Equal(t, four, o.Rating())
		assert.False(t, o.CanBeRated())

		require.ErrorIs(t, o.Rate(kernel.Rating(2)), order.ErrOrderAlreadyRated)
		assert.Equal(t, four, o.Rating())
	})

	t.Run("should reject unset and invalid ratings", func(t *testing.T) {
		o := newTestOrder(t, order.Delivered)

		require.ErrorIs(t, o.Rate(kernel.Rating(0)), errs.ErrValueIsRequired)
		require.ErrorIs(t, o.Rate(kernel.Rating(9)), errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_CloneAndSnapshotAreIndependent(t *testing.T) {
	o := newTestOrder(t, order.Ready)

	clone := o.Clone()
	require.NoError(t, clone.Advance(order.Delivering, "5-10 min"))

	assert.Equal(t, order.Ready, o.Status())
	assert.True(t, o.IsEqual(clone))

	items := o.Items()
	items[0] = order.LineItem{}
	assert.True(t, strings.HasPrefix(o.Items()[0].Name(), "X-"))
}
