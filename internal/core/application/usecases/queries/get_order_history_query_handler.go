package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

type GetOrderHistoryQueryHandler struct {
	store ports.OrderStore
}

func NewGetOrderHistoryQueryHandler(store ports.OrderStore) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{store: store}
}

// Handle never returns a nil Orders slice.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if query.IsGlobal() {
		orders, err = h.store.ListGlobalHistory(ctx)
	} else {
		orders, err = h.store.ListHistory(ctx, query.UserKey())
	}
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return GetOrderHistoryQueryResponse{Orders: orders}, nil
}
