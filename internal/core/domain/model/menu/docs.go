// Package menu provides the menu items a restaurant sells and the Catalog that owns them.
//
// The package includes:
//   - MenuItem: a dish with a fixed unit price, cooking attributes, optional toppings
//     and an availability flag
//   - Catalog: the id-keyed collection of menu items
//   - UnavailableError: raised when an order references an item that cannot be sold
//
// Key business rules:
//   - Menu item ids are positive and unique within a catalog
//   - The unit price (base price plus toppings) is fixed when the item is created
//   - Availability is the only attribute that changes after creation
package menu
