package model

import "github.com/shopspring/decimal"

// Category classifies a product in the catalogue.
type Category string

const (
	CategoryWater Category = "water"
	CategoryGas   Category = "gas"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	return c == CategoryWater || c == CategoryGas
}

// Product represents a sellable product in the catalogue.
// Products are loaded once at startup and never mutated.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Sizes       []Size          `json:"sizes"`
}

// Size represents a size variant of a product. AdditionalPrice is the
// adjustment relative to the product's base price and may be negative.
type Size struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Value           string          `json:"value"`
	AdditionalPrice decimal.Decimal `json:"additionalPrice"`
}

// SizeByID returns the size variant with the given ID, if present.
func (p Product) SizeByID(id string) (Size, bool) {
	for _, s := range p.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}
