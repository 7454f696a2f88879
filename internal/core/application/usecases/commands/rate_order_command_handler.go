package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/core/application/tracking"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

type RateOrderCommandHandler struct {
	store    ports.OrderStore
	registry *tracking.Registry
	logger   *slog.Logger
}

func NewRateOrderCommandHandler(
	store ports.OrderStore,
	registry *tracking.Registry,
	logger *slog.Logger,
) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		store:    store,
		registry: registry,
		logger:   logger.With("component", "rate_order_handler"),
	}
}

// Handle rates the current order through its tracker. When the tracker is
// gone, for example after a restart, a sweep or a stop, only a delivered
// stored order is tracked again, and a delivered order schedules nothing.
// It reports whether the rating was applied: a rating before delivery or a
// second rating is not.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	tracker, ok := h.registry.Get(cmd.UserKey())
	if !ok || tracker.Stopped() {
		o, err := loadCurrentOrder(ctx, h.store, cmd.UserKey())
		if err != nil {
			return false, err
		}
		if o.Status() != order.Delivered {
			h.logger.InfoContext(ctx, "Rating not applicable", "order_number", o.Number(), "status", o.Status())
			return false, nil
		}
		if tracker, err = h.registry.Track(ctx, cmd.UserKey(), o); err != nil {
			return false, fmt.Errorf("start tracking %s: %w", o.Number(), err)
		}
	}

	applied, err := tracker.Rate(ctx, cmd.Rating())
	if err != nil {
		return false, err
	}
	if !applied {
		h.logger.InfoContext(ctx, "Rating not applicable", "order_number", tracker.OrderNumber())
	}
	return applied, nil
}
