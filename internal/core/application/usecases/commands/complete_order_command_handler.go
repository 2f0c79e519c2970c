package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/ports"
)

// CompleteOrderCommandHandler moves a cooked order to ReadyForDelivery, frees the
// chef and lets the coordinator record the sale.
type CompleteOrderCommandHandler struct {
	restaurant *restaurant.Restaurant
	events     eventSink
}

func NewCompleteOrderCommandHandler(
	r *restaurant.Restaurant,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{restaurant: r, events: newEventSink(publisher, logger)}
}

func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if h.restaurant == nil {
		return nil, ErrRestaurantIsRequired
	}

	o, err := h.restaurant.CompleteOrder(cmd.OrderID(), cmd.ChefID())
	if err != nil {
		return nil, err
	}

	h.events.emit(ctx, order.Preparing, chefOf, o)
	return o, nil
}
