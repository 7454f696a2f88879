package queries

import (
	"context"

	"storefront/internal/core/ports"
)

type GetSignalsQueryHandler struct {
	inbox        ports.NotificationInbox
	celebrations ports.CelebrationSource
}

func NewGetSignalsQueryHandler(
	inbox ports.NotificationInbox,
	celebrations ports.CelebrationSource,
) GetSignalsQueryHandler {
	return GetSignalsQueryHandler{inbox: inbox, celebrations: celebrations}
}

func (h GetSignalsQueryHandler) Handle(_ context.Context, query GetSignalsQuery) (GetSignalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSignalsQueryResponse{}, err
	}

	notifications := h.inbox.Drain(query.UserKey())
	if notifications == nil {
		notifications = make([]ports.Notification, 0)
	}
	return GetSignalsQueryResponse{
		Notifications: notifications,
		Celebrate:     h.celebrations.TakeCelebration(query.UserKey()),
	}, nil
}
