package model

import "github.com/shopspring/decimal"

// DeliveryFee maps a neighborhood to a flat delivery fee. The neighborhood
// name is a case-insensitive unique key; a zero fee means free delivery,
// which is distinct from the neighborhood not being configured at all.
type DeliveryFee struct {
	ID           string          `json:"id"`
	Neighborhood string          `json:"neighborhood"`
	Fee          decimal.Decimal `json:"fee"`
}
