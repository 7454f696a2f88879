// Package ports defines the contracts between the storefront core and its
// collaborators: persistence, notifications, UI signals and scheduling.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderStore persists the "current order" slot of every user and the two
// history collections (one per user, one global).
//
// A user key is the opaque string a storefront session is identified by.
type OrderStore interface {
	// ReadCurrentOrder returns the user's current order or an
	// errs.ObjectNotFoundError when the slot is empty.
	ReadCurrentOrder(ctx context.Context, userKey string) (*order.Order, error)

	// WriteCurrentOrder replaces the user's current order.
	WriteCurrentOrder(ctx context.Context, userKey string, o *order.Order) error

	// AppendToHistory stores o in the user's history. A second append of the
	// same order number is a successful no-op.
	AppendToHistory(ctx context.Context, userKey string, o *order.Order) error

	// AppendToGlobalHistory stores o in the global history, idempotent by
	// order number.
	AppendToGlobalHistory(ctx context.Context, o *order.Order) error

	// UpdateHistoryRating sets the rating of the entry with orderNumber in the
	// user's history and in the global history. It returns an
	// errs.ObjectNotFoundError when neither collection has the entry.
	UpdateHistoryRating(ctx context.Context, userKey, orderNumber string, rating kernel.Rating) error

	// ListHistory returns the user's archived orders, newest first.
	ListHistory(ctx context.Context, userKey string) ([]*order.Order, error)

	// ListGlobalHistory returns every archived order, newest first.
	ListGlobalHistory(ctx context.Context) ([]*order.Order, error)
}
