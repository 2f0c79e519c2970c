// Package ports defines the contracts between the restaurant core and its
// infrastructure: persistence of the seed data and the delivered-order archive,
// the unit of work that scopes them, and the publisher of order status events.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// MenuRepository stores the menu a restaurant is seeded with.
type MenuRepository interface {
	// Add persists a new menu item. The id must not exist yet.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item with its toppings.
	Get(ctx context.Context, id int) (*menu.MenuItem, error)

	// GetAll retrieves every menu item ordered by id.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)
}
