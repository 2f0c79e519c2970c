package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// ErrRestaurantIsRequired is returned by handlers built without a coordinator.
var ErrRestaurantIsRequired = errors.New("restaurant coordinator is required")

// eventSink publishes status events after the coordinator has released its lock.
// A failed publish is logged and never undoes the transition.
type eventSink struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newEventSink(publisher ports.EventPublisher, logger *slog.Logger) eventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return eventSink{publisher: publisher, logger: logger, now: time.Now}
}

// emit announces that each order moved from the given status to its current one.
func (s eventSink) emit(ctx context.Context, from order.Status, staffID func(*order.Order) string, orders ...*order.Order) {
	if len(orders) == 0 {
		return
	}

	events := make([]order.StatusChanged, 0, len(orders))
	for _, o := range orders {
		e := order.NewStatusChanged(o, from, staffID(o), s.now())
		events = append(events, e)
		s.logger.InfoContext(ctx, "order status changed",
			"order_id", e.OrderID,
			"from", e.From.String(),
			"status", e.To.String(),
			"staff_id", e.StaffID,
		)
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order status events", "count", len(events), "error", err)
	}
}

func noStaff(*order.Order) string     { return "" }
func chefOf(o *order.Order) string    { return o.ChefID() }
func courierOf(o *order.Order) string { return o.CourierID() }
