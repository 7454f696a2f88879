package queries

import (
	"context"
	"errors"

	"storefront/internal/core/application/tracking"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetCurrentOrderQueryHandler prefers the live tracker, which holds the
// latest status even when a store write failed, and falls back to the store.
type GetCurrentOrderQueryHandler struct {
	store    ports.OrderStore
	registry *tracking.Registry
}

func NewGetCurrentOrderQueryHandler(store ports.OrderStore, registry *tracking.Registry) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{store: store, registry: registry}
}

// Handle returns errs.ErrObjectNotFound when the user has no readable
// current order.
func (h GetCurrentOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentOrderQuery,
) (GetCurrentOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentOrderQueryResponse{}, err
	}

	if tracker, ok := h.registry.Get(query.UserKey()); ok && !tracker.Stopped() {
		return GetCurrentOrderQueryResponse{
			Order:            tracker.Snapshot(),
			ShowRatingPrompt: tracker.ShowRatingPrompt(),
			Tracking:         !tracker.Finished(),
		}, nil
	}

	o, err := h.store.ReadCurrentOrder(ctx, query.UserKey())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return GetCurrentOrderQueryResponse{}, err
		}
		if order.IsMalformed(err) {
			return GetCurrentOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("current order", query.UserKey(), err)
		}
		return GetCurrentOrderQueryResponse{}, err
	}

	return GetCurrentOrderQueryResponse{
		Order:            o,
		ShowRatingPrompt: o.CanBeRated(),
	}, nil
}

