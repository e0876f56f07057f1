package cart

import (
	"testing"

	"agua-gas/internal/catalog"
	"agua-gas/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id string) model.Product {
	t.Helper()
	p, ok := catalog.Default().ByID(id)
	require.True(t, ok)
	return p
}

func mustSize(t *testing.T, p model.Product, id string) model.Size {
	t.Helper()
	s, ok := p.SizeByID(id)
	require.True(t, ok)
	return s
}

func TestCart_AddLine_MergesSameSlot(t *testing.T) {
	water := mustProduct(t, "water-1")
	xl := mustSize(t, water, "water-1-xl")

	var c Cart
	require.NoError(t, c.AddLine(water, xl, 2))
	require.NoError(t, c.AddLine(water, xl, 3))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 5, c.TotalItems())
}

func TestCart_AddLine_DifferentSizesAreSeparateLines(t *testing.T) {
	water := mustProduct(t, "water-1")
	small := mustSize(t, water, "water-1-s")
	xl := mustSize(t, water, "water-1-xl")

	var c Cart
	require.NoError(t, c.AddLine(water, small, 1))
	require.NoError(t, c.AddLine(water, xl, 1))

	assert.Equal(t, 2, c.Len())
}

func TestCart_AddLine_RejectsNonPositiveQuantity(t *testing.T) {
	water := mustProduct(t, "water-1")
	small := mustSize(t, water, "water-1-s")

	var c Cart
	assert.ErrorIs(t, c.AddLine(water, small, 0), model.ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddLine(water, small, -3), model.ErrInvalidQuantity)
	assert.Equal(t, 0, c.Len())
}

func TestCart_UpdateQuantity(t *testing.T) {
	water := mustProduct(t, "water-1")
	small := mustSize(t, water, "water-1-s")

	var c Cart
	require.NoError(t, c.AddLine(water, small, 2))

	tests := []struct {
		name     string
		index    int
		quantity int
		wantErr  error
		wantQty  int
	}{
		{name: "sets quantity exactly", index: 0, quantity: 7, wantQty: 7},
		{name: "below one is a no-op", index: 0, quantity: 0, wantQty: 7},
		{name: "negative is a no-op", index: 0, quantity: -1, wantQty: 7},
		{name: "out of range", index: 4, quantity: 2, wantErr: model.ErrLineNotFound, wantQty: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.UpdateQuantity(tt.index, tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantQty, c.TotalItems())
		})
	}
}

func TestCart_RemoveLine_ShiftsSubsequentLines(t *testing.T) {
	water := mustProduct(t, "water-1")
	gas := mustProduct(t, "gas-1")
	small := mustSize(t, water, "water-1-s")
	p13 := mustSize(t, gas, "gas-1-m")

	var c Cart
	require.NoError(t, c.AddLine(water, small, 1))
	require.NoError(t, c.AddLine(gas, p13, 1))

	require.NoError(t, c.RemoveLine(0))
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "gas-1", c.Snapshot()[0].Product.ID)

	assert.ErrorIs(t, c.RemoveLine(5), model.ErrLineNotFound)
	assert.ErrorIs(t, c.RemoveLine(-1), model.ErrLineNotFound)
}

func TestCart_TotalPrice_PricingScenario(t *testing.T) {
	// water-1 base 5.00 + water-1-xl delta 15.00, quantity 2 => 40.00.
	water := mustProduct(t, "water-1")
	xl := mustSize(t, water, "water-1-xl")

	var c Cart
	require.NoError(t, c.AddLine(water, xl, 2))

	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("40.00")),
		"got %s", c.TotalPrice())
}

func TestCart_TotalPrice_NegativeDelta(t *testing.T) {
	gas := mustProduct(t, "gas-1")
	p5 := mustSize(t, gas, "gas-1-s")

	var c Cart
	require.NoError(t, c.AddLine(gas, p5, 1))

	// 95.00 - 30.00
	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("65.00")))
}

func TestCart_Totals_EmptyCart(t *testing.T) {
	var c Cart
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().Equal(decimal.Zero))
}

func TestCart_Totals_Idempotent(t *testing.T) {
	water := mustProduct(t, "water-1")
	xl := mustSize(t, water, "water-1-xl")

	var c Cart
	require.NoError(t, c.AddLine(water, xl, 2))

	first := c.TotalPrice()
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(c.TotalPrice()))
		assert.Equal(t, 2, c.TotalItems())
	}
}

func TestCart_Snapshot_IsolatedFromMutation(t *testing.T) {
	water := mustProduct(t, "water-1")
	xl := mustSize(t, water, "water-1-xl")

	var c Cart
	require.NoError(t, c.AddLine(water, xl, 2))

	snap := c.Snapshot()
	require.Len(t, snap, 1)

	require.NoError(t, c.UpdateQuantity(0, 9))
	require.NoError(t, c.RemoveLine(0))

	assert.Equal(t, 2, snap[0].Quantity)
	assert.Equal(t, "water-1", snap[0].Product.ID)
}

func TestCart_Clear(t *testing.T) {
	water := mustProduct(t, "water-1")
	small := mustSize(t, water, "water-1-s")

	var c Cart
	require.NoError(t, c.AddLine(water, small, 3))
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.True(t, c.TotalPrice().Equal(decimal.Zero))
}
