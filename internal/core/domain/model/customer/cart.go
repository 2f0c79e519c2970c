package customer

import (
	"fmt"
	"slices"
	"sync"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

// Line is one (menu item, quantity) pair of a cart.
type Line struct {
	Item     *menu.MenuItem
	Quantity int
}

// Subtotal is the unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	return l.Item.Price().Times(l.Quantity)
}

// Cart accumulates menu items before checkout. Adding an item that is already in the
// cart increases its quantity instead of adding a second line. Lines keep the order in
// which items were first added.
//
// Cart is safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of item into the cart.
func (c *Cart) Add(item *menu.MenuItem, quantity int) error {
	if item == nil {
		return errs.NewValueIsRequiredError("menu item")
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID() == item.ID() {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: quantity})
	return nil
}

// Remove drops the line for itemID and reports whether one existed.
func (c *Cart) Remove(itemID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID() == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Checkout hands the current lines to place and empties the cart only if place
// succeeds. The cart stays locked while place runs, so adds made meanwhile land after
// the cart is emptied. place must not call back into the cart.
func (c *Cart) Checkout(place func(lines []Line) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := place(slices.Clone(c.lines)); err != nil {
		return err
	}
	c.lines = nil
	return nil
}

// Lines returns a copy of the cart lines.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

func (c *Cart) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) Subtotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range c.Lines() {
		total = total.Add(l.Subtotal())
	}
	return total
}
