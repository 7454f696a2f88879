package kernel

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// AddressFields is the raw input for NewAddress.
type AddressFields struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	ZipCode    string
}

// Address is the delivery address copied into an order at checkout. It is a
// value: editing the customer's saved addresses later never reaches an
// Address already embedded in an order.
type Address struct { //nolint:recvcheck //using for validation
	fields AddressFields
	guard  guard.ConstructorGuard
}

// NewAddress trims every field and requires street, number and city.
func NewAddress(fields AddressFields) (Address, error) {
	trimmed := AddressFields{
		Street:     strings.TrimSpace(fields.Street),
		Number:     strings.TrimSpace(fields.Number),
		Complement: strings.TrimSpace(fields.Complement),
		District:   strings.TrimSpace(fields.District),
		City:       strings.TrimSpace(fields.City),
		State:      strings.TrimSpace(fields.State),
		ZipCode:    strings.TrimSpace(fields.ZipCode),
	}

	if err := errors.Join(
		required("address street", trimmed.Street),
		required("address number", trimmed.Number),
		required("address city", trimmed.City),
	); err != nil {
		return Address{}, err
	}

	return Address{fields: trimmed, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Fields returns a copy of the address parts.
func (a Address) Fields() AddressFields {
	return a.fields
}

func (a Address) Street() string     { return a.fields.Street }
func (a Address) Number() string     { return a.fields.Number }
func (a Address) Complement() string { return a.fields.Complement }
func (a Address) District() string   { return a.fields.District }
func (a Address) City() string       { return a.fields.City }
func (a Address) State() string      { return a.fields.State }
func (a Address) ZipCode() string    { return a.fields.ZipCode }

// String renders the single line shown on the tracking page.
func (a Address) String() string {
	line := fmt.Sprintf("%s, %s", a.fields.Street, a.fields.Number)
	if a.fields.Complement != "" {
		line += " - " + a.fields.Complement
	}
	if a.fields.District != "" {
		line += ", " + a.fields.District
	}
	line += ", " + a.fields.City
	if a.fields.State != "" {
		line += "/" + a.fields.State
	}
	return line
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
