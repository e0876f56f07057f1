// Package cart implements the shopping cart state machine: an ordered
// sequence of lines with add/remove/update operations and derived totals.
package cart

import (
	"agua-gas/internal/model"

	"github.com/shopspring/decimal"
)

// Cart holds an ordered sequence of cart lines. The zero value is an empty,
// usable cart. Cart is not safe for concurrent use; Manager serialises
// access per session.
type Cart struct {
	lines []model.CartLine
}

// AddLine adds quantity units of the given product and size. A line matching
// the same (product, size) slot is incremented rather than duplicated.
// A quantity below 1 is rejected.
func (c *Cart) AddLine(product model.Product, size model.Size, quantity int) error {
	if quantity < 1 {
		return model.ErrInvalidQuantity
	}

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID && c.lines[i].Size.ID == size.ID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, model.CartLine{
		Product:  product,
		Size:     size,
		Quantity: quantity,
	})
	return nil
}

// RemoveLine removes the line at the given position. Subsequent lines shift
// down by one.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return model.ErrLineNotFound
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// UpdateQuantity sets the quantity of the line at the given position.
// A quantity below 1 leaves the stored quantity unchanged; callers wanting
// removal must call RemoveLine.
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.lines) {
		return model.ErrLineNotFound
	}
	if quantity < 1 {
		return nil
	}
	c.lines[index].Quantity = quantity
	return nil
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalItems returns the sum of line quantities. Recomputed on every call.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice returns the sum of line totals. Recomputed on every call.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// Snapshot returns a deep copy of the current lines, suitable for order
// assembly: mutating the cart afterwards does not affect the copy.
func (c *Cart) Snapshot() []model.CartLine {
	if len(c.lines) == 0 {
		return nil
	}
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	for i := range out {
		sizes := make([]model.Size, len(out[i].Product.Sizes))
		copy(sizes, out[i].Product.Sizes)
		out[i].Product.Sizes = sizes
	}
	return out
}
