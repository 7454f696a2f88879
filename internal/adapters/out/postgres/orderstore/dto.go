package orderstore

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// LineItemDTO is one element of the items JSONB column.
type LineItemDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type AddressDTO struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	ZipCode    string
}

// OrderColumns are the order columns shared by the current order table and
// both history tables.
type OrderColumns struct {
	OrderNumber       string
	RestaurantID      string
	RestaurantName    string
	Items             []LineItemDTO `gorm:"type:jsonb;serializer:json"`
	TotalCents        int64
	PlacedAt          time.Time
	EstimatedDelivery string
	Address           AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	PaymentMethod     string
	PaymentLast4      string `gorm:"column:payment_last4"`
	PaymentHolder     string
	Status            int `gorm:"type:smallint"`
	Rating            int `gorm:"type:smallint"`
}

type CurrentOrderDTO struct {
	UserKey      string `gorm:"primaryKey"`
	OrderColumns `gorm:"embedded"`
	UpdatedAt    time.Time
}

func (CurrentOrderDTO) TableName() string {
	return "current_orders"
}

type UserHistoryDTO struct {
	UserKey      string `gorm:"primaryKey"`
	OrderColumns `gorm:"embedded"`
	ArchivedSeq  int64 `gorm:"->"`
}

func (UserHistoryDTO) TableName() string {
	return "user_order_history"
}

type GlobalHistoryDTO struct {
	OrderColumns `gorm:"embedded"`
	ArchivedSeq  int64 `gorm:"->"`
}

func (GlobalHistoryDTO) TableName() string {
	return "order_history"
}

func fromDomain(o *order.Order) OrderColumns {
	items := o.Items()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			ID:             item.ID(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	address := o.Address().Fields()
	columns := OrderColumns{
		OrderNumber:       o.Number(),
		RestaurantID:      o.Restaurant().ID,
		RestaurantName:    o.Restaurant().Name,
		Items:             itemDTOs,
		TotalCents:        o.Total().Cents(),
		PlacedAt:          o.PlacedAt(),
		EstimatedDelivery: o.EstimatedDelivery(),
		Address:           AddressDTO(address),
		PaymentMethod:     string(o.Payment().Method()),
		Status:            int(o.Status()),
		Rating:            o.Rating().Int(),
	}
	if details := o.Payment().Details(); details != nil {
		columns.PaymentLast4 = details.Last4
		columns.PaymentHolder = details.Holder
	}
	return columns
}

func toDomain(c OrderColumns) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(c.Items))
	for _, dto := range c.Items {
		item, err := order.NewLineItem(dto.ID, dto.Name, kernel.Money(dto.UnitPriceCents), dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	address, err := kernel.NewAddress(kernel.AddressFields(c.Address))
	if err != nil {
		return nil, err
	}
	payment, err := order.RestorePayment(order.PaymentMethod(c.PaymentMethod), c.PaymentLast4, c.PaymentHolder)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		Number:            c.OrderNumber,
		Restaurant:        order.Restaurant{ID: c.RestaurantID, Name: c.RestaurantName},
		Items:             items,
		Total:             kernel.Money(c.TotalCents),
		PlacedAt:          c.PlacedAt,
		EstimatedDelivery: c.EstimatedDelivery,
		Address:           address,
		Payment:           payment,
		Status:            order.Status(c.Status),
		Rating:            kernel.Rating(c.Rating),
	})
}
