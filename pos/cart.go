// Package pos holds the order-entry core: the in-progress cart, the bill
// derivation, and order submission.
package pos

import (
	"restaurant-pos-api/models"

	"github.com/shopspring/decimal"
)

// Line is one entry of an in-progress order. Name and price are snapshots
// taken when the item was first added; later menu edits don't touch them.
type Line struct {
	MenuItemID uint            `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

// Cart accumulates lines for a single in-progress order. At most one line per
// menu item; a line's quantity is always ≥ 1 — dropping to zero removes it.
// First-insertion order is preserved for display. Not safe for concurrent
// use; each client session owns its own cart.
type Cart struct {
	lines []Line
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the given menu item, merging into an existing
// line if the item is already in the cart.
func (c *Cart) AddItem(item models.MenuItem) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
	})
}

// ChangeQuantity adjusts a line's quantity by delta. If the result is zero or
// negative the line is removed entirely. Unknown ids are a no-op.
func (c *Cart) ChangeQuantity(menuItemID uint, delta int) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity += delta
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// RemoveItem drops a line regardless of its quantity.
func (c *Cart) RemoveItem(menuItemID uint) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
