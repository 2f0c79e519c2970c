package menu

import (
	"slices"

	"restaurant/internal/pkg/errs"
)

// Catalog owns the menu items of one restaurant, keyed by item id.
// It is not safe for concurrent use; the restaurant coordinator serializes access.
type Catalog struct {
	items map[int]*MenuItem
}

func NewCatalog() *Catalog {
	return &Catalog{items: make(map[int]*MenuItem)}
}

// Add registers item. It fails with ErrObjectAlreadyExists when the id is taken.
func (c *Catalog) Add(item *MenuItem) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("menu item", err)
	}
	if _, exists := c.items[item.ID()]; exists {
		return errs.NewObjectAlreadyExistsError("menu item", item.ID())
	}
	c.items[item.ID()] = item
	return nil
}

// Remove deletes the item with id and reports whether anything was removed.
// Removing an unknown id is a no-op.
func (c *Catalog) Remove(id int) bool {
	if _, exists := c.items[id]; !exists {
		return false
	}
	delete(c.items, id)
	return true
}

// Find returns the item with id, or false when there is none.
func (c *Catalog) Find(id int) (*MenuItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

// SetAvailability toggles the availability flag of an existing item.
func (c *Catalog) SetAvailability(id int, available bool) (*MenuItem, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menu item", id)
	}
	item.setAvailability(available)
	return item, nil
}

// List returns all items ordered by id.
func (c *Catalog) List() []*MenuItem {
	out := make([]*MenuItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b *MenuItem) int { return a.ID() - b.ID() })
	return out
}

func (c *Catalog) Count() int {
	return len(c.items)
}
