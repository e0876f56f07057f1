// Package catalog holds the static product catalogue. The catalogue is
// immutable: it is built once at startup and only read afterwards.
package catalog

import (
	"agua-gas/internal/model"

	"github.com/shopspring/decimal"
)

// Catalog provides lookup over the sellable products.
type Catalog struct {
	products []model.Product
	byID     map[string]model.Product
}

// New creates a catalogue over the given products.
func New(products []model.Product) *Catalog {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the catalogue with the standard product set.
func Default() *Catalog {
	return New(defaultProducts())
}

// All returns every product in catalogue order.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID returns the product with the given identifier.
func (c *Catalog) ByID(id string) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByCategory returns all products in the given category, in catalogue order.
func (c *Catalog) ByCategory(category model.Category) []model.Product {
	var out []model.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          "water-1",
			Name:        "Água Mineral Natural",
			Category:    model.CategoryWater,
			Price:       price("5.00"),
			Image:       "/water-bottle.png",
			Description: "Água mineral natural, purificada e envasada em embalagem higiênica.",
			Sizes: []model.Size{
				{ID: "water-1-s", Name: "Garrafa 500ml", Value: "500ml", AdditionalPrice: price("0")},
				{ID: "water-1-m", Name: "Garrafa 1,5L", Value: "1.5L", AdditionalPrice: price("3.00")},
				{ID: "water-1-l", Name: "Galão 5L", Value: "5L", AdditionalPrice: price("10.00")},
				{ID: "water-1-xl", Name: "Galão 20L", Value: "20L", AdditionalPrice: price("15.00")},
			},
		},
		{
			ID:          "water-2",
			Name:        "Água Mineral com Gás",
			Category:    model.CategoryWater,
			Price:       price("6.00"),
			Image:       "/water-gas.png",
			Description: "Água mineral gaseificada, refrescante e com bolhas.",
			Sizes: []model.Size{
				{ID: "water-2-s", Name: "Garrafa 500ml", Value: "500ml", AdditionalPrice: price("0")},
				{ID: "water-2-m", Name: "Garrafa 1,5L", Value: "1.5L", AdditionalPrice: price("3.50")},
			},
		},
		{
			ID:          "gas-1",
			Name:        "Gás de Cozinha",
			Category:    model.CategoryGas,
			Price:       price("95.00"),
			Image:       "/gas-cylinder.png",
			Description: "Botijão de gás para uso doméstico, seguro e de qualidade.",
			Sizes: []model.Size{
				{ID: "gas-1-s", Name: "Botijão P5", Value: "P5", AdditionalPrice: price("-30.00")},
				{ID: "gas-1-m", Name: "Botijão P13", Value: "P13", AdditionalPrice: price("0")},
				{ID: "gas-1-l", Name: "Botijão P45", Value: "P45", AdditionalPrice: price("200.00")},
			},
		},
	}
}
