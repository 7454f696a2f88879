// Package ordertest provides order fixtures for tests of the packages that
// store, track or serve orders.
package ordertest

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// PlacedAt is the checkout time of every fixture order.
var PlacedAt = time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

// New builds a valid two-line order paid by credit card.
func New(t testing.TB, number string, status order.Status) *order.Order {
	t.Helper()

	burger, err := order.NewLineItem("burger", "X-Salada", kernel.Money(2490), 2)
	require.NoError(t, err)
	fries, err := order.NewLineItem("fries", "Batata frita", kernel.Money(1290), 1)
	require.NoError(t, err)
	address, err := kernel.NewAddress(kernel.AddressFields{
		Street:     "Rua Augusta",
		Number:     "1500",
		Complement: "apto 12",
		District:   "Consolação",
		City:       "São Paulo",
		State:      "SP",
		ZipCode:    "01304-001",
	})
	require.NoError(t, err)
	payment, err := order.NewPayment(order.CreditCard, "4111 1111 1111 1234", "Ana Souza")
	require.NoError(t, err)

	o, err := order.NewOrder(
		number,
		order.Restaurant{ID: "rest-7", Name: "Lanchonete da Esquina"},
		[]order.LineItem{burger, fries},
		address,
		payment,
		status,
		"40-50 min",
		PlacedAt,
	)
	require.NoError(t, err)
	return o
}

// Delivered builds a delivered order, rated when rating is set.
func Delivered(t testing.TB, number string, rating kernel.Rating) *order.Order {
	t.Helper()

	o := New(t, number, order.Delivered)
	if rating.IsSet() {
		require.NoError(t, o.Rate(rating))
	}
	return o
}

// Diff compares two orders field by field and returns a human readable diff,
// or "" when they hold the same state.
func Diff(want, got *order.Order) string {
	return cmp.Diff(want.Snapshot(), got.Snapshot(),
		cmp.AllowUnexported(order.LineItem{}, order.Payment{}, kernel.Address{}, guard.ConstructorGuard{}),
	)
}
