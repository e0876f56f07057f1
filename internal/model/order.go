package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is one of the accepted payment options.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

// Valid reports whether the payment method is one of the enumerated values.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentPix
}

// Label returns the customer-facing Portuguese label for the method.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Dinheiro"
	case PaymentCard:
		return "Cartão"
	case PaymentPix:
		return "PIX"
	default:
		return string(m)
	}
}

// CustomerInfo holds the customer-supplied checkout fields. Validation tags
// mirror the storefront form constraints and drive per-field error messages.
type CustomerInfo struct {
	Name          string        `json:"name" validate:"required,min=3"`
	Phone         string        `json:"phone" validate:"required,min=10"`
	Address       string        `json:"address" validate:"required,min=5"`
	Neighborhood  string        `json:"neighborhood,omitempty" validate:"omitempty,min=2"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=cash card pix"`
	Observations  string        `json:"observations,omitempty"`
}

// Order is an immutable snapshot taken at checkout time. The lines are
// deep-copied from the cart, so later cart mutation never affects an
// already-assembled order.
type Order struct {
	ID            uuid.UUID        `json:"id"`
	Lines         []CartLine       `json:"lines"`
	CustomerName  string           `json:"customerName"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	Neighborhood  string           `json:"neighborhood,omitempty"`
	PaymentMethod PaymentMethod    `json:"paymentMethod"`
	Observations  string           `json:"observations,omitempty"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	DeliveryFee   *decimal.Decimal `json:"deliveryFee,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// GrandTotal returns the subtotal plus the delivery fee when one is present
// and non-zero. A zero or absent fee leaves the total at the subtotal.
func (o Order) GrandTotal() decimal.Decimal {
	if o.DeliveryFee != nil && o.DeliveryFee.IsPositive() {
		return o.Subtotal.Add(*o.DeliveryFee)
	}
	return o.Subtotal
}
