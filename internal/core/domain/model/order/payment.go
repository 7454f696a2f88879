package order

import (
	"fmt"
	"strings"
	"unicode"

	"storefront/internal/pkg/errs"
)

// PaymentMethod is how the customer pays on delivery or at checkout.
type PaymentMethod string

const (
	CreditCard PaymentMethod = "credit_card"
	DebitCard  PaymentMethod = "debit_card"
	Pix        PaymentMethod = "pix"
	Cash       PaymentMethod = "cash"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case CreditCard, DebitCard, Pix, Cash:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", s))
	}
}

func (m PaymentMethod) IsCard() bool {
	return m == CreditCard || m == DebitCard
}

// CardDetails is everything kept about a card.
type CardDetails struct {
	Last4  string
	Holder string
}

// Payment is the payment snapshot stored with an order.
type Payment struct {
	method  PaymentMethod
	details *CardDetails
}

// NewPayment masks cardNumber down to its last four digits. Card methods
// require a card number and holder; other methods ignore both.
func NewPayment(method PaymentMethod, cardNumber, holder string) (Payment, error) {
	method, err := ParsePaymentMethod(string(method))
	if err != nil {
		return Payment{}, err
	}
	if !method.IsCard() {
		return Payment{method: method}, nil
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, cardNumber)
	if len(digits) < 12 || len(digits) > 19 || strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return Payment{}, errs.NewValueIsInvalidError("card number")
	}

	holder = strings.TrimSpace(holder)
	if holder == "" {
		return Payment{}, errs.NewValueIsRequiredError("card holder")
	}

	return Payment{
		method:  method,
		details: &CardDetails{Last4: digits[len(digits)-4:], Holder: holder},
	}, nil
}

// RestorePayment rebuilds a stored payment snapshot.
func RestorePayment(method PaymentMethod, last4, holder string) (Payment, error) {
	method, err := ParsePaymentMethod(string(method))
	if err != nil {
		return Payment{}, err
	}
	if last4 == "" && holder == "" {
		return Payment{method: method}, nil
	}
	if len(last4) != 4 {
		return Payment{}, errs.NewValueIsInvalidError("card last4")
	}
	return Payment{method: method, details: &CardDetails{Last4: last4, Holder: holder}}, nil
}

func (p Payment) Method() PaymentMethod {
	return p.method
}

// Details returns a copy of the card details, or nil.
func (p Payment) Details() *CardDetails {
	if p.details == nil {
		return nil
	}
	d := *p.details
	return &d
}
