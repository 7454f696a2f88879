package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/core/application/tracking"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrNoCurrentOrder means there is nothing to track: the user has no current
// order or the stored one cannot be read back. Callers send the user away
// from the tracking page.
var ErrNoCurrentOrder = errors.New("no current order")

type TrackOrderResult struct {
	Order            *order.Order
	ShowRatingPrompt bool
	Tracking         bool
}

type TrackOrderCommandHandler struct {
	store    ports.OrderStore
	registry *tracking.Registry
	logger   *slog.Logger
}

func NewTrackOrderCommandHandler(
	store ports.OrderStore,
	registry *tracking.Registry,
	logger *slog.Logger,
) TrackOrderCommandHandler {
	return TrackOrderCommandHandler{
		store:    store,
		registry: registry,
		logger:   logger.With("component", "track_order_handler"),
	}
}

// Handle starts a tracker for the stored order, or returns the running one.
func (h TrackOrderCommandHandler) Handle(ctx context.Context, cmd TrackOrderCommand) (TrackOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return TrackOrderResult{}, err
	}

	o, err := loadCurrentOrder(ctx, h.store, cmd.UserKey())
	if err != nil {
		return TrackOrderResult{}, err
	}

	tracker, err := h.registry.Track(ctx, cmd.UserKey(), o)
	if err != nil {
		return TrackOrderResult{}, fmt.Errorf("start tracking %s: %w", o.Number(), err)
	}

	h.logger.DebugContext(ctx, "Tracking order", "order_number", o.Number())
	return TrackOrderResult{
		Order:            tracker.Snapshot(),
		ShowRatingPrompt: tracker.ShowRatingPrompt(),
		Tracking:         !tracker.Finished(),
	}, nil
}

// loadCurrentOrder maps a missing or unreadable stored order to
// ErrNoCurrentOrder. Store failures are returned as they are.
func loadCurrentOrder(ctx context.Context, store ports.OrderStore, userKey string) (*order.Order, error) {
	o, err := store.ReadCurrentOrder(ctx, userKey)
	if err == nil {
		return o, nil
	}
	if order.IsMalformed(err) || errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrNoCurrentOrder, err)
	}
	return nil, err
}

