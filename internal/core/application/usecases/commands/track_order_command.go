package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrTrackOrderCommandIsNotConstructed = errors.New(
	"TrackOrderCommand must be created via NewTrackOrderCommand constructor",
)

// TrackOrderCommand resumes tracking of the user's current order, as the
// tracking page does when it loads.
type TrackOrderCommand struct {
	userKey string
	guard   guard.ConstructorGuard
}

func NewTrackOrderCommand(userKey string) (TrackOrderCommand, error) {
	if userKey == "" {
		return TrackOrderCommand{}, errs.NewValueIsRequiredError("user key")
	}
	return TrackOrderCommand{userKey: userKey, guard: guard.NewConstructorGuard()}, nil
}

func (c TrackOrderCommand) Validate() error {
	return c.guard.Validate(ErrTrackOrderCommandIsNotConstructed)
}

func (c TrackOrderCommand) UserKey() string {
	return c.userKey
}
