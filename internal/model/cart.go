package model

import "github.com/shopspring/decimal"

// CartLine is one (product, size, quantity) entry in a cart or order.
// Quantity is always >= 1; removal, not zero quantity, represents "none".
type CartLine struct {
	Product  Product `json:"product"`
	Size     Size    `json:"size"`
	Quantity int     `json:"quantity"`
}

// UnitPrice returns the effective price of a single unit, the product's
// base price plus the size adjustment.
func (l CartLine) UnitPrice() decimal.Decimal {
	return l.Product.Price.Add(l.Size.AdditionalPrice)
}

// LineTotal returns the unit price multiplied by the quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SameSlot reports whether two lines occupy the same cart slot, i.e.
// reference the same product and size variant.
func (l CartLine) SameSlot(other CartLine) bool {
	return l.Product.ID == other.Product.ID && l.Size.ID == other.Size.ID
}
