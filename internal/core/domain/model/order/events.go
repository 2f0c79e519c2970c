package order

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// StatusChanged is emitted whenever an order moves between lifecycle states.
type StatusChanged struct {
	EventID    kernel.UUID
	OrderID    int64
	CustomerID int64
	From       Status
	To         Status
	StaffID    string
	Total      kernel.Money
	OccurredAt time.Time
}

// NewStatusChanged captures the transition of o from the given status to its current one.
// staffID is the chef or courier involved, or "" for admission and cancellation.
func NewStatusChanged(o *Order, from Status, staffID string, at time.Time) StatusChanged {
	return StatusChanged{
		EventID:    kernel.NewUUID(),
		OrderID:    o.ID(),
		CustomerID: o.CustomerID(),
		From:       from,
		To:         o.Status(),
		StaffID:    staffID,
		Total:      o.Total(),
		OccurredAt: at,
	}
}

// RoutingKey is the message routing key used by event publishers.
func (e StatusChanged) RoutingKey() string {
	return "order.status." + e.To.String()
}
