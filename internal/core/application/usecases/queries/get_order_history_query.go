package queries

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery or NewGetGlobalHistoryQuery constructor",
)

// GetOrderHistoryQuery lists archived orders, newest first. Without a user
// key it reads the global history.
type GetOrderHistoryQuery struct {
	userKey string
	guard   guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(userKey string) GetOrderHistoryQuery {
	return GetOrderHistoryQuery{userKey: userKey, guard: guard.NewConstructorGuard()}
}

func NewGetGlobalHistoryQuery() GetOrderHistoryQuery {
	return NewGetOrderHistoryQuery("")
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) UserKey() string {
	return q.userKey
}

func (q GetOrderHistoryQuery) IsGlobal() bool {
	return q.userKey == ""
}

type GetOrderHistoryQueryResponse struct {
	Orders []*order.Order
}
