package http

import (
	"errors"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
)

func toPlaceOrderCommand(userKey string, body servers.NewOrder) (commands.PlaceOrderCommand, error) {
	items := make([]order.LineItem, 0, len(body.Items))
	errList := make([]error, 0)
	for _, item := range body.Items {
		price, err := kernel.NewMoney(item.UnitPrice)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lineItem, err := order.NewLineItem(item.Id, item.Name, price, item.Quantity)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, lineItem)
	}

	address, err := kernel.NewAddress(kernel.AddressFields{
		Street:     body.Address.Street,
		Number:     body.Address.Number,
		Complement: deref(body.Address.Complement),
		District:   deref(body.Address.District),
		City:       body.Address.City,
		State:      deref(body.Address.State),
		ZipCode:    deref(body.Address.ZipCode),
	})
	errList = append(errList, err)

	payment, err := order.NewPayment(
		order.PaymentMethod(body.Payment.Method),
		deref(body.Payment.CardNumber),
		deref(body.Payment.Holder),
	)
	errList = append(errList, err)

	startStatus := order.Unknown
	if body.StartStatus != nil {
		startStatus, err = order.ParseStatus(string(*body.StartStatus))
		errList = append(errList, err)
	}

	if err = errors.Join(errList...); err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	return commands.NewPlaceOrderCommand(
		userKey,
		order.Restaurant{ID: body.Restaurant.Id, Name: body.Restaurant.Name},
		items,
		address,
		payment,
		startStatus,
	)
}

func toOrder(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = servers.OrderItem{
			Id:        item.ID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Cents(),
			Subtotal:  item.Subtotal().Cents(),
		}
	}

	address := o.Address()
	payment := servers.Payment{Method: servers.PaymentMethod(o.Payment().Method())}
	if details := o.Payment().Details(); details != nil {
		payment.Last4 = &details.Last4
		payment.Holder = &details.Holder
	}

	response := servers.Order{
		OrderNumber: o.Number(),
		Restaurant: servers.Restaurant{
			Id:   o.Restaurant().ID,
			Name: o.Restaurant().Name,
		},
		Items:             items,
		Total:             o.Total().Cents(),
		PlacedAt:          o.PlacedAt(),
		EstimatedDelivery: o.EstimatedDelivery(),
		Address: servers.Address{
			Street:     address.Street(),
			Number:     address.Number(),
			Complement: optional(address.Complement()),
			District:   optional(address.District()),
			City:       address.City(),
			State:      optional(address.State()),
			ZipCode:    optional(address.ZipCode()),
		},
		Payment: payment,
		Status:  servers.Status(o.Status().String()),
	}
	if o.Rating().IsSet() {
		rating := o.Rating().Int()
		response.Rating = &rating
	}
	return response
}

func toSignals(signals queries.GetSignalsQueryResponse) servers.Signals {
	notifications := make([]servers.Notification, len(signals.Notifications))
	for i, n := range signals.Notifications {
		notifications[i] = servers.Notification{
			Message:   n.Message,
			Kind:      servers.NotificationKind(n.Kind),
			CreatedAt: n.CreatedAt,
		}
	}
	return servers.Signals{Notifications: notifications, Celebrate: signals.Celebrate}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
