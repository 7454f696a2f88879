package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status is a position in the delivery progression. The numeric order of the
// constants is the order of the progression, so comparisons between valid
// statuses are comparisons of progress.
//
//	pending ─> confirmed ─> preparing ─> ready ─> delivering ─> delivered
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	Delivering
	// Delivered is the terminal status.
	Delivered
)

var statusNames = map[Status]string{
	Pending:    "pending",
	Confirmed:  "confirmed",
	Preparing:  "preparing",
	Ready:      "ready",
	Delivering: "delivering",
	Delivered:  "delivered",
}

// Sequence returns every valid status in progression order.
func Sequence() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Delivering, Delivered}
}

// ParseStatus accepts the lower-case names produced by String, ignoring case
// and surrounding blanks.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, statusName := range statusNames {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the lower-case name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Following returns the valid statuses strictly after s, in order.
func (s Status) Following() []Status {
	following := make([]Status, 0, len(statusNames))
	for _, next := range Sequence() {
		if next > s {
			following = append(following, next)
		}
	}
	return following
}

// ValidateAdvance checks that moving from s to next goes strictly forward.
func (s Status) ValidateAdvance(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next <= s {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move from %s to %s", s, next),
		)
	}
	return nil
}
