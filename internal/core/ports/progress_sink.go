package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// ProgressSink receives the signals the tracking page renders. Implementations
// receive copies of the order and must not call back into the tracker.
type ProgressSink interface {
	// OnProgress is called after every persisted transition.
	OnProgress(ctx context.Context, userKey string, o *order.Order)

	// OnTerminalReached is called once, when the order becomes delivered.
	OnTerminalReached(ctx context.Context, userKey string, o *order.Order)
}

// CelebrationSource tells the tracking page to play the delivery
// celebration. TakeCelebration is true once per delivered order.
type CelebrationSource interface {
	TakeCelebration(userKey string) bool
}
