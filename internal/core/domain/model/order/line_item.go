package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// LineItem is one cart line frozen at checkout: later menu price changes do
// not reach it.
type LineItem struct {
	id        string
	name      string
	unitPrice kernel.Money
	quantity  int
}

func NewLineItem(id, name string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	item := LineItem{
		id:        strings.TrimSpace(id),
		name:      strings.TrimSpace(name),
		unitPrice: unitPrice,
		quantity:  quantity,
	}

	var errList []error
	if item.id == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item id"))
	}
	if item.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item name"))
	}
	if unitPrice < 0 {
		errList = append(errList, errs.NewValueIsInvalidError("item unit price"))
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity))
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (i LineItem) ID() string              { return i.id }
func (i LineItem) Name() string            { return i.name }
func (i LineItem) UnitPrice() kernel.Money { return i.unitPrice }
func (i LineItem) Quantity() int           { return i.quantity }

// Subtotal is unit price times quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
