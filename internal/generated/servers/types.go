// Package servers holds the storefront HTTP contract: the OpenAPI document,
// its request and response types and the echo bindings that decode
// parameters before calling a ServerInterface. The layout follows
// oapi-codegen's echo server output.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for PaymentMethod.
const (
	Cash       PaymentMethod = "cash"
	CreditCard PaymentMethod = "credit_card"
	DebitCard  PaymentMethod = "debit_card"
	Pix        PaymentMethod = "pix"
)

// Defines values for Status.
const (
	Confirmed  Status = "confirmed"
	Delivered  Status = "delivered"
	Delivering Status = "delivering"
	Pending    Status = "pending"
	Preparing  Status = "preparing"
	Ready      Status = "ready"
)

// Defines values for NotificationKind.
const (
	NotificationKindError   NotificationKind = "error"
	NotificationKindSuccess NotificationKind = "success"
	NotificationKindWarning NotificationKind = "warning"
)

// Address defines model for Address.
type Address struct {
	City       string  `json:"city"`
	Complement *string `json:"complement,omitempty"`
	District   *string `json:"district,omitempty"`
	Number     string  `json:"number"`
	State      *string `json:"state,omitempty"`
	Street     string  `json:"street"`
	ZipCode    *string `json:"zipCode,omitempty"`
}

// CurrentOrder defines model for CurrentOrder.
type CurrentOrder struct {
	Order            Order `json:"order"`
	ShowRatingPrompt bool  `json:"showRatingPrompt"`
	Tracking         bool  `json:"tracking"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// History defines model for History.
type History struct {
	Orders []Order `json:"orders"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Address     Address        `json:"address"`
	Items       []NewOrderItem `json:"items"`
	Payment     NewPayment     `json:"payment"`
	Restaurant  Restaurant     `json:"restaurant"`
	StartStatus *Status        `json:"startStatus,omitempty"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	// UnitPrice Price in cents.
	UnitPrice int64 `json:"unitPrice"`
}

// NewPayment defines model for NewPayment.
type NewPayment struct {
	CardNumber *string       `json:"cardNumber,omitempty"`
	Holder     *string       `json:"holder,omitempty"`
	Method     PaymentMethod `json:"method"`
}

// NewRating defines model for NewRating.
type NewRating struct {
	Rating int `json:"rating"`
}

// Notification defines model for Notification.
type Notification struct {
	CreatedAt time.Time        `json:"createdAt"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
}

// NotificationKind defines model for Notification.Kind.
type NotificationKind string

// Order defines model for Order.
type Order struct {
	Address           Address     `json:"address"`
	EstimatedDelivery string      `json:"estimatedDelivery"`
	Items             []OrderItem `json:"items"`
	OrderNumber       string      `json:"orderNumber"`
	Payment           Payment     `json:"payment"`
	PlacedAt          time.Time   `json:"placedAt"`
	Rating            *int        `json:"rating,omitempty"`
	Restaurant        Restaurant  `json:"restaurant"`
	Status            Status      `json:"status"`
	Total             int64       `json:"total"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
	UnitPrice int64  `json:"unitPrice"`
}

// Payment defines model for Payment.
type Payment struct {
	Holder *string       `json:"holder,omitempty"`
	Last4  *string       `json:"last4,omitempty"`
	Method PaymentMethod `json:"method"`
}

// PaymentMethod defines model for PaymentMethod.
type PaymentMethod string

// PlacedOrder defines model for PlacedOrder.
type PlacedOrder struct {
	OrderNumber string `json:"orderNumber"`
}

// RatingResult defines model for RatingResult.
type RatingResult struct {
	Applied bool `json:"applied"`
}

// Restaurant defines model for Restaurant.
type Restaurant struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Signals defines model for Signals.
type Signals struct {
	Celebrate     bool           `json:"celebrate"`
	Notifications []Notification `json:"notifications"`
}

// Status defines model for Status.
type Status string

// TrackingStopped defines model for TrackingStopped.
type TrackingStopped struct {
	Stopped bool `json:"stopped"`
}

// XUserId defines model for XUserId.
type XUserId = openapi_types.UUID

// UserParams carries the caller identity header shared by the current-order
// operations.
type UserParams struct {
	XUserId XUserId `json:"X-User-Id"`
}

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// RateOrderJSONRequestBody defines body for RateOrder for application/json ContentType.
type RateOrderJSONRequestBody = NewRating
