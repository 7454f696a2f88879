package queries

import (
	"errors"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetSignalsQueryIsNotConstructed = errors.New(
	"GetSignalsQuery must be created via NewGetSignalsQuery constructor",
)

// GetSignalsQuery collects the transient signals for a user: pending toast
// notifications and the one-shot delivery celebration. Reading them
// consumes them.
type GetSignalsQuery struct {
	userKey string
	guard   guard.ConstructorGuard
}

func NewGetSignalsQuery(userKey string) (GetSignalsQuery, error) {
	if userKey == "" {
		return GetSignalsQuery{}, errs.NewValueIsRequiredError("user key")
	}
	return GetSignalsQuery{userKey: userKey, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSignalsQuery) Validate() error {
	return q.guard.Validate(ErrGetSignalsQueryIsNotConstructed)
}

func (q GetSignalsQuery) UserKey() string {
	return q.userKey
}

type GetSignalsQueryResponse struct {
	Notifications []ports.Notification
	Celebrate     bool
}
