package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// EventPublisher delivers order status events to interested parties.
// Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
