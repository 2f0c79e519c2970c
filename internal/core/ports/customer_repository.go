package ports

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
)

// CustomerRepository stores registered customers. Carts are not persisted.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id int64) (*customer.Customer, error)
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
