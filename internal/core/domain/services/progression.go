package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrProgressionIsNotConstructed = errors.New("Progression must be created via NewProgression")

// PlannedStep is one scheduled transition. At is measured from the moment
// tracking starts, not from the previous step.
type PlannedStep struct {
	Status order.Status
	At     time.Duration
	ETA    string
}

// Progression holds the per-status delay table and the per-status delivery
// estimate shown to the customer.
//
// The delay of a status is the time spent in the previous status before
// moving to it, so a plan starting at preparing with delays
// ready=1.2s, delivering=2s, delivered=2.8s fires at 1.2s, 3.2s and 6s.
type Progression struct {
	delays map[order.Status]time.Duration
	etas   map[order.Status]string
	guard  guard.ConstructorGuard
}

// NewProgression copies both tables. Every delay must be positive and every
// valid status needs an estimate.
func NewProgression(delays map[order.Status]time.Duration, etas map[order.Status]string) (Progression, error) {
	p := Progression{
		delays: make(map[order.Status]time.Duration, len(delays)),
		etas:   make(map[order.Status]string, len(etas)),
		guard:  guard.NewConstructorGuard(),
	}

	var errList []error
	for status, delay := range delays {
		if err := status.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if delay <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"delay", fmt.Errorf("delay for %s must be positive, got %s", status, delay)))
			continue
		}
		p.delays[status] = delay
	}
	for _, status := range order.Sequence() {
		eta, ok := etas[status]
		if !ok || eta == "" {
			errList = append(errList, errs.NewValueIsRequiredError("estimated delivery for "+status.String()))
			continue
		}
		p.etas[status] = eta
	}

	if err := errors.Join(errList...); err != nil {
		return Progression{}, err
	}
	return p, nil
}

// DefaultProgression is the table used by the storefront checkout.
func DefaultProgression() Progression {
	p, err := NewProgression(
		map[order.Status]time.Duration{
			order.Confirmed:  3 * time.Second,
			order.Preparing:  5 * time.Second,
			order.Ready:      20 * time.Second,
			order.Delivering: 10 * time.Second,
			order.Delivered:  20 * time.Second,
		},
		map[order.Status]string{
			order.Pending:    "40-50 min",
			order.Confirmed:  "35-45 min",
			order.Preparing:  "25-35 min",
			order.Ready:      "15-20 min",
			order.Delivering: "5-10 min",
			order.Delivered:  "Entregue",
		},
	)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Progression) Validate() error {
	return p.guard.Validate(ErrProgressionIsNotConstructed)
}

// ETA returns the delivery estimate for status.
func (p Progression) ETA(status order.Status) string {
	return p.etas[status]
}

// Delay returns the configured delay for status and whether one is set.
func (p Progression) Delay(status order.Status) (time.Duration, bool) {
	d, ok := p.delays[status]
	return d, ok
}

// Plan lists the transitions left after from, each with its cumulative
// offset. A terminal from yields an empty plan.
func (p Progression) Plan(from order.Status) ([]PlannedStep, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := from.Validate(); err != nil {
		return nil, err
	}

	following := from.Following()
	plan := make([]PlannedStep, 0, len(following))
	var at time.Duration
	for _, status := range following {
		delay, ok := p.delays[status]
		if !ok {
			return nil, errs.NewValueIsRequiredError("delay for " + status.String())
		}
		at += delay
		plan = append(plan, PlannedStep{Status: status, At: at, ETA: p.etas[status]})
	}
	return plan, nil
}
