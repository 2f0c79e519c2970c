package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderRepository archives orders that reached a final status.
type OrderRepository interface {
	// Add persists an order with its lines. The id must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an archived order by id.
	// Returns errs.ErrObjectNotFound when it was never archived.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllByCustomer retrieves a customer's archived orders, oldest first.
	GetAllByCustomer(ctx context.Context, customerID int64) ([]*order.Order, error)
}
