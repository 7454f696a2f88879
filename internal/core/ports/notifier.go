package ports

import (
	"context"
	"time"
)

// NotificationKind selects how a message is shown to the customer.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

// Notifier delivers user visible toast messages. It is fire and forget.
type Notifier interface {
	Notify(ctx context.Context, userKey, message string, kind NotificationKind)
}

type Notification struct {
	Message   string
	Kind      NotificationKind
	CreatedAt time.Time
}

// NotificationInbox hands out the messages a Notifier queued for a user.
type NotificationInbox interface {
	// Drain returns the pending messages, oldest first, and forgets them.
	Drain(userKey string) []Notification
}
