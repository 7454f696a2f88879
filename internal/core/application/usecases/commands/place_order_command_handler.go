package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/tracking"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

var ErrOrderNotSaved = errors.New("order could not be saved")

const (
	msgOrderPlaced    = "Pedido confirmado!"
	msgOrderNotPlaced = "Não foi possível confirmar o pedido. Tente novamente."
)

// PlaceOrderCommandHandler snapshots a checkout into an order, stores it as
// the user's current order and starts tracking it. The checkout is confirmed
// only when the order was stored.
type PlaceOrderCommandHandler struct {
	store       ports.OrderStore
	notifier    ports.Notifier
	registry    *tracking.Registry
	progression services.Progression
	logger      *slog.Logger
	now         func() time.Time
}

func NewPlaceOrderCommandHandler(
	store ports.OrderStore,
	notifier ports.Notifier,
	registry *tracking.Registry,
	progression services.Progression,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		store:       store,
		notifier:    notifier,
		registry:    registry,
		progression: progression,
		logger:      logger.With("component", "place_order_handler"),
		now:         time.Now,
	}
}

// Handle returns the number of the placed order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	o, err := order.NewOrder(
		order.NewNumber(),
		cmd.Restaurant(),
		cmd.Items(),
		cmd.Address(),
		cmd.Payment(),
		cmd.StartStatus(),
		h.progression.ETA(cmd.StartStatus()),
		h.now(),
	)
	if err != nil {
		return "", err
	}
	if _, err = h.progression.Plan(o.Status()); err != nil {
		return "", fmt.Errorf("plan progression of %s: %w", o.Number(), err)
	}

	if err = h.store.WriteCurrentOrder(ctx, cmd.UserKey(), o); err != nil {
		h.logger.ErrorContext(ctx, "Failed to save placed order", "order_number", o.Number(), "error", err)
		h.notifier.Notify(ctx, cmd.UserKey(), msgOrderNotPlaced, ports.NotificationError)
		return "", fmt.Errorf("%w: %w", ErrOrderNotSaved, err)
	}
	h.notifier.Notify(ctx, cmd.UserKey(), msgOrderPlaced, ports.NotificationSuccess)

	if _, err = h.registry.Track(ctx, cmd.UserKey(), o); err != nil {
		return "", fmt.Errorf("start tracking %s: %w", o.Number(), err)
	}

	h.logger.InfoContext(ctx, "Order placed",
		"order_number", o.Number(),
		"restaurant_id", o.Restaurant().ID,
		"total", o.Total().String(),
		"status", o.Status().String())
	return o.Number(), nil
}
