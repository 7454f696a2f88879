package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	// ErrOrderIsNotConstructed is returned by Validate for orders not built by
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrRatingBeforeDelivery is returned by Rate while the order is not delivered.
	ErrRatingBeforeDelivery = errors.New("order can only be rated after it is delivered")

	// ErrOrderAlreadyRated is returned by Rate when a rating is already present.
	ErrOrderAlreadyRated = errors.New("order is already rated")
)

// IsMalformed reports whether err comes from restoring an order out of
// inconsistent stored data, as opposed to a failure of the store itself.
func IsMalformed(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, ErrRatingBeforeDelivery)
}

// Restaurant identifies where the order was placed.
type Restaurant struct {
	ID   string
	Name string
}

// Snapshot is the complete state of an order as plain data. Stores persist
// snapshots and RestoreOrder turns them back into orders.
type Snapshot struct {
	Number            string
	Restaurant        Restaurant
	Items             []LineItem
	Total             kernel.Money
	PlacedAt          time.Time
	EstimatedDelivery string
	Address           kernel.Address
	Payment           Payment
	Status            Status
	Rating            kernel.Rating
}

// Order is a confirmed checkout on its way to the customer.
//
// Order follows these invariants:
//   - The order number never changes
//   - Status only moves forward along Sequence()
//   - Total equals the sum of item subtotals at checkout and is never recomputed
//   - Rating is unset until the order is delivered and is set at most once
type Order struct {
	number            string
	restaurant        Restaurant
	items             []LineItem
	total             kernel.Money
	placedAt          time.Time
	estimatedDelivery string
	address           kernel.Address
	payment           Payment
	status            Status
	rating            kernel.Rating

	guard guard.ConstructorGuard
}

// NewNumber returns a fresh order number such as "PED-9F86D081".
func NewNumber() string {
	return "PED-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// NewOrder builds the order at checkout confirmation. The status is whatever
// the checkout flow hands over, usually Pending. The total is computed here
// from the items and frozen.
func NewOrder(
	number string,
	restaurant Restaurant,
	items []LineItem,
	address kernel.Address,
	payment Payment,
	status Status,
	estimatedDelivery string,
	placedAt time.Time,
) (*Order, error) {
	var total kernel.Money
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return RestoreOrder(Snapshot{
		Number:            number,
		Restaurant:        restaurant,
		Items:             items,
		Total:             total,
		PlacedAt:          placedAt,
		EstimatedDelivery: estimatedDelivery,
		Address:           address,
		Payment:           payment,
		Status:            status,
	})
}

// RestoreOrder rebuilds an order from persisted state. The stored total is
// kept as is.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		number:            strings.TrimSpace(s.Number),
		restaurant:        s.Restaurant,
		items:             slices.Clone(s.Items),
		total:             s.Total,
		placedAt:          s.PlacedAt,
		estimatedDelivery: s.EstimatedDelivery,
		address:           s.Address,
		payment:           s.Payment,
		status:            s.Status,
		rating:            s.Rating,
		guard:             guard.NewConstructorGuard(),
	}

	var errList []error
	if o.number == "" {
		errList = append(errList, errs.NewValueIsRequiredError("order number"))
	}
	if strings.TrimSpace(o.restaurant.ID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("restaurant id"))
	}
	if len(o.items) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("items"))
	}
	if o.total < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%d is negative", o.total)))
	}
	if o.placedAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("placed at"))
	}
	errList = append(errList, o.address.Validate(), o.status.Validate(), o.rating.Validate())
	if o.rating.IsSet() && !o.status.IsTerminal() {
		errList = append(errList, ErrRatingBeforeDelivery)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate reports whether the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) Restaurant() Restaurant {
	return o.restaurant
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

func (o *Order) EstimatedDelivery() string {
	return o.estimatedDelivery
}

func (o *Order) Address() kernel.Address {
	return o.address
}

func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Rating() kernel.Rating {
	return o.rating
}

func (o *Order) Items() []LineItem {
	return slices.Clone(o.items)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

func (o *Order) CanBeRated() bool {
	return o.status.IsTerminal() && !o.rating.IsSet()
}

func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		Number:            o.number,
		Restaurant:        o.restaurant,
		Items:             slices.Clone(o.items),
		Total:             o.total,
		PlacedAt:          o.placedAt,
		EstimatedDelivery: o.estimatedDelivery,
		Address:           o.address,
		Payment:           o.payment,
		Status:            o.status,
		Rating:            o.rating,
	}
}

// Clone returns an independent copy, used to hand the order to observers
// without sharing the tracker's instance.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	return &c
}

// Advance moves the order forward to next and replaces the delivery estimate.
func (o *Order) Advance(next Status, estimatedDelivery string) error {
	if err := o.status.ValidateAdvance(next); err != nil {
		return err
	}

	o.status = next
	o.estimatedDelivery = estimatedDelivery
	return nil
}

// Rate records the customer's rating of a delivered order.
func (o *Order) Rate(rating kernel.Rating) error {
	if !rating.IsSet() {
		return errs.NewValueIsRequiredError("rating")
	}
	if err := rating.Validate(); err != nil {
		return err
	}
	if !o.status.IsTerminal() {
		return ErrRatingBeforeDelivery
	}
	if o.rating.IsSet() {
		return ErrOrderAlreadyRated
	}

	o.rating = rating
	return nil
}
