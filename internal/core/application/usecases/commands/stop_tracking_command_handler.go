package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/tracking"
)

type StopTrackingCommandHandler struct {
	registry *tracking.Registry
	logger   *slog.Logger
}

func NewStopTrackingCommandHandler(registry *tracking.Registry, logger *slog.Logger) StopTrackingCommandHandler {
	return StopTrackingCommandHandler{
		registry: registry,
		logger:   logger.With("component", "stop_tracking_handler"),
	}
}

// Handle reports whether a tracker was running. Stopping twice is fine.
func (h StopTrackingCommandHandler) Handle(ctx context.Context, cmd StopTrackingCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	stopped := h.registry.Stop(cmd.UserKey())
	h.logger.DebugContext(ctx, "Tracking stopped", "user_key", cmd.UserKey(), "was_running", stopped)
	return stopped, nil
}
