package dynamodb

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

const (
	attrPK = "pk"
	attrSK = "sk"

	skCurrent       = "CURRENT"
	skHistoryPrefix = "HISTORY#"
	pkGlobalHistory = "HISTORY"
	skGlobalPrefix  = "ORDER#"

	tableWaitTimeout = 2 * time.Minute

	// fixed width, so written_at values sort lexically
	writtenAtLayout = "2006-01-02T15:04:05.000000000Z"
)

func userPK(userKey string) string {
	return "USER#" + userKey
}

type lineItemItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	UnitPriceCents int64  `dynamodbav:"unit_price_cents"`
	Quantity       int    `dynamodbav:"quantity"`
}

type addressItem struct {
	Street     string `dynamodbav:"street"`
	Number     string `dynamodbav:"number"`
	Complement string `dynamodbav:"complement,omitempty"`
	District   string `dynamodbav:"district,omitempty"`
	City       string `dynamodbav:"city"`
	State      string `dynamodbav:"state,omitempty"`
	ZipCode    string `dynamodbav:"zip_code,omitempty"`
}

type orderItem struct {
	PK                string         `dynamodbav:"pk"`
	SK                string         `dynamodbav:"sk"`
	OrderNumber       string         `dynamodbav:"order_number"`
	RestaurantID      string         `dynamodbav:"restaurant_id"`
	RestaurantName    string         `dynamodbav:"restaurant_name"`
	Items             []lineItemItem `dynamodbav:"items"`
	TotalCents        int64          `dynamodbav:"total_cents"`
	PlacedAt          string         `dynamodbav:"placed_at"`
	EstimatedDelivery string         `dynamodbav:"estimated_delivery"`
	Address           addressItem    `dynamodbav:"address"`
	PaymentMethod     string         `dynamodbav:"payment_method"`
	PaymentLast4      string         `dynamodbav:"payment_last4,omitempty"`
	PaymentHolder     string         `dynamodbav:"payment_holder,omitempty"`
	Status            string         `dynamodbav:"status"`
	Rating            int            `dynamodbav:"rating"`
	WrittenAt         string         `dynamodbav:"written_at"`
}

func toOrderItem(pk, sk string, o *order.Order, now time.Time) orderItem {
	items := o.Items()
	lineItems := make([]lineItemItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, lineItemItem{
			ID:             item.ID(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
		})
	}

	address := o.Address().Fields()
	it := orderItem{
		PK:                pk,
		SK:                sk,
		OrderNumber:       o.Number(),
		RestaurantID:      o.Restaurant().ID,
		RestaurantName:    o.Restaurant().Name,
		Items:             lineItems,
		TotalCents:        o.Total().Cents(),
		PlacedAt:          o.PlacedAt().UTC().Format(time.RFC3339Nano),
		EstimatedDelivery: o.EstimatedDelivery(),
		Address:           addressItem(address),
		PaymentMethod:     string(o.Payment().Method()),
		Status:            o.Status().String(),
		Rating:            o.Rating().Int(),
		WrittenAt:         now.UTC().Format(writtenAtLayout),
	}
	if details := o.Payment().Details(); details != nil {
		it.PaymentLast4 = details.Last4
		it.PaymentHolder = details.Holder
	}
	return it
}

func fromOrderItem(it orderItem) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		item, err := order.NewLineItem(li.ID, li.Name, kernel.Money(li.UnitPriceCents), li.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	address, err := kernel.NewAddress(kernel.AddressFields(it.Address))
	if err != nil {
		return nil, err
	}
	payment, err := order.RestorePayment(order.PaymentMethod(it.PaymentMethod), it.PaymentLast4, it.PaymentHolder)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(it.Status)
	if err != nil {
		return nil, err
	}
	placedAt, err := time.Parse(time.RFC3339Nano, it.PlacedAt)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("placed at", err)
	}

	return order.RestoreOrder(order.Snapshot{
		Number:            it.OrderNumber,
		Restaurant:        order.Restaurant{ID: it.RestaurantID, Name: it.RestaurantName},
		Items:             items,
		Total:             kernel.Money(it.TotalCents),
		PlacedAt:          placedAt,
		EstimatedDelivery: it.EstimatedDelivery,
		Address:           address,
		Payment:           payment,
		Status:            status,
		Rating:            kernel.Rating(it.Rating),
	})
}
