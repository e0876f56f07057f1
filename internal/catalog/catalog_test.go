package catalog

import (
	"testing"

	"agua-gas/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ByID(t *testing.T) {
	c := Default()

	p, ok := c.ByID("water-1")
	require.True(t, ok)
	assert.Equal(t, "Água Mineral Natural", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("5.00")))

	_, ok = c.ByID("soda-1")
	assert.False(t, ok)
}

func TestCatalog_ByCategory(t *testing.T) {
	c := Default()

	water := c.ByCategory(model.CategoryWater)
	require.Len(t, water, 2)
	assert.Equal(t, "water-1", water[0].ID)
	assert.Equal(t, "water-2", water[1].ID)

	gas := c.ByCategory(model.CategoryGas)
	require.Len(t, gas, 1)
	assert.Equal(t, "gas-1", gas[0].ID)
}

func TestCatalog_SizeByID(t *testing.T) {
	c := Default()

	p, ok := c.ByID("gas-1")
	require.True(t, ok)

	s, ok := p.SizeByID("gas-1-s")
	require.True(t, ok)
	// The P5 cylinder is cheaper than the base P13 price.
	assert.True(t, s.AdditionalPrice.IsNegative())

	_, ok = p.SizeByID("gas-1-xxl")
	assert.False(t, ok)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c := Default()

	all := c.All()
	require.NotEmpty(t, all)
	all[0].Name = "mutated"

	fresh := c.All()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}
