package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Money is an amount in cents. Negative amounts are rejected by NewMoney.
type Money int64

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%d is negative", cents))
	}
	return Money(cents), nil
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// String formats the amount with two decimals, e.g. "42.90".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100)
}
