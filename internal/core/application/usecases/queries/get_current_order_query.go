package queries

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
	"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
)

// GetCurrentOrderQuery reads what the tracking page shows for a user.
//
// Example:
//
//	query, err := NewGetCurrentOrderQuery(userKey)
//	if err != nil {
//	    return err
//	}
//	current, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing to track
//	}
type GetCurrentOrderQuery struct {
	userKey string
	guard   guard.ConstructorGuard
}

func NewGetCurrentOrderQuery(userKey string) (GetCurrentOrderQuery, error) {
	if userKey == "" {
		return GetCurrentOrderQuery{}, errs.NewValueIsRequiredError("user key")
	}
	return GetCurrentOrderQuery{userKey: userKey, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}

func (q GetCurrentOrderQuery) UserKey() string {
	return q.userKey
}

// GetCurrentOrderQueryResponse is the current order with the two flags the
// tracking page renders: the rating prompt and whether timers are running.
type GetCurrentOrderQueryResponse struct {
	Order            *order.Order
	ShowRatingPrompt bool
	Tracking         bool
}
