package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrStopTrackingCommandIsNotConstructed = errors.New(
	"StopTrackingCommand must be created via NewStopTrackingCommand constructor",
)

// StopTrackingCommand tears the tracking view down: every pending
// transition of the user's tracker is cancelled.
type StopTrackingCommand struct {
	userKey string
	guard   guard.ConstructorGuard
}

func NewStopTrackingCommand(userKey string) (StopTrackingCommand, error) {
	if userKey == "" {
		return StopTrackingCommand{}, errs.NewValueIsRequiredError("user key")
	}
	return StopTrackingCommand{userKey: userKey, guard: guard.NewConstructorGuard()}, nil
}

func (c StopTrackingCommand) Validate() error {
	return c.guard.Validate(ErrStopTrackingCommandIsNotConstructed)
}

func (c StopTrackingCommand) UserKey() string {
	return c.userKey
}
