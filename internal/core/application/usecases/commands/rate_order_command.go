package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand carries the customer's 1..5 rating of the current order.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	userKey string
	rating  kernel.Rating

	guard guard.ConstructorGuard
}

func NewRateOrderCommand(userKey string, rating int) (RateOrderCommand, error) {
	cmd := RateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUserKey(userKey),
		cmd.setRating(rating),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return cmd, nil
}

func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

func (c RateOrderCommand) UserKey() string {
	return c.userKey
}

func (c RateOrderCommand) Rating() kernel.Rating {
	return c.rating
}

func (c *RateOrderCommand) setUserKey(userKey string) error {
	if userKey == "" {
		return errs.NewValueIsRequiredError("user key")
	}

	c.userKey = userKey
	return nil
}

func (c *RateOrderCommand) setRating(value int) error {
	rating, err := kernel.NewRating(value)
	if err != nil {
		return err
	}

	c.rating = rating
	return nil
}
