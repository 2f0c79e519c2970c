package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/ports"
)

// DispatchDeliveryCommandHandler sends a ReadyForDelivery order out with a courier.
type DispatchDeliveryCommandHandler struct {
	restaurant *restaurant.Restaurant
	events     eventSink
}

func NewDispatchDeliveryCommandHandler(
	r *restaurant.Restaurant,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DispatchDeliveryCommandHandler {
	return DispatchDeliveryCommandHandler{restaurant: r, events: newEventSink(publisher, logger)}
}

func (h *DispatchDeliveryCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if h.restaurant == nil {
		return nil, ErrRestaurantIsRequired
	}

	o, err := h.restaurant.DeliverOrder(cmd.OrderID(), cmd.CourierID())
	if err != nil {
		return nil, err
	}

	h.events.emit(ctx, order.ReadyForDelivery, courierOf, o)
	return o, nil
}
