package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a confirmed checkout.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(userKey, restaurant, items, address, payment, order.Pending)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	number, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userKey     string
	restaurant  order.Restaurant
	items       []order.LineItem
	address     kernel.Address
	payment     order.Payment
	startStatus order.Status

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the checkout. A zero startStatus means
// pending; any other status must not be delivered.
func NewPlaceOrderCommand(
	userKey string,
	restaurant order.Restaurant,
	items []order.LineItem,
	address kernel.Address,
	payment order.Payment,
	startStatus order.Status,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		payment: payment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserKey(userKey),
		cmd.setRestaurant(restaurant),
		cmd.setItems(items),
		cmd.setAddress(address),
		cmd.setStartStatus(startStatus),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserKey() string {
	return c.userKey
}

func (c PlaceOrderCommand) Restaurant() order.Restaurant {
	return c.restaurant
}

func (c PlaceOrderCommand) Items() []order.LineItem {
	return append([]order.LineItem(nil), c.items...)
}

func (c PlaceOrderCommand) Address() kernel.Address {
	return c.address
}

func (c PlaceOrderCommand) Payment() order.Payment {
	return c.payment
}

func (c PlaceOrderCommand) StartStatus() order.Status {
	return c.startStatus
}

func (c *PlaceOrderCommand) setUserKey(userKey string) error {
	if userKey == "" {
		return errs.NewValueIsRequiredError("user key")
	}

	c.userKey = userKey
	return nil
}

func (c *PlaceOrderCommand) setRestaurant(restaurant order.Restaurant) error {
	if restaurant.ID == "" {
		return errs.NewValueIsRequiredError("restaurant id")
	}

	c.restaurant = restaurant
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = append([]order.LineItem(nil), items...)
	return nil
}

func (c *PlaceOrderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setStartStatus(status order.Status) error {
	if status == order.Unknown {
		status = order.Pending
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if status.IsTerminal() {
		return errs.NewValueIsInvalidError("start status " + status.String())
	}

	c.startStatus = status
	return nil
}
