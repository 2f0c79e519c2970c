package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/ports"
)

// PlaceOrderCommandHandler turns a customer's cart into a queued order.
type PlaceOrderCommandHandler struct {
	restaurant *restaurant.Restaurant
	events     eventSink
}

func NewPlaceOrderCommandHandler(
	r *restaurant.Restaurant,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{restaurant: r, events: newEventSink(publisher, logger)}
}

// Handle admits the order and announces it as Placed.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if h.restaurant == nil {
		return nil, ErrRestaurantIsRequired
	}

	o, err := h.restaurant.PlaceOrder(cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	h.events.emit(ctx, order.Unknown, noStaff, o)
	return o, nil
}
