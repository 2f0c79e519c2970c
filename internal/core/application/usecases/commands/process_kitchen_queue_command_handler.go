package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/ports"
)

// ProcessKitchenQueueCommandHandler drains the kitchen queue into free chefs.
// It is run both on demand and by the kitchen dispatch job.
type ProcessKitchenQueueCommandHandler struct {
	restaurant *restaurant.Restaurant
	events     eventSink
}

func NewProcessKitchenQueueCommandHandler(
	r *restaurant.Restaurant,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ProcessKitchenQueueCommandHandler {
	return ProcessKitchenQueueCommandHandler{restaurant: r, events: newEventSink(publisher, logger)}
}

// Handle returns the orders that started preparing. An empty result is not an error.
func (h *ProcessKitchenQueueCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessKitchenQueueCommand,
) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if h.restaurant == nil {
		return nil, ErrRestaurantIsRequired
	}

	started := h.restaurant.ProcessKitchenQueue()
	h.events.emit(ctx, order.Placed, chefOf, started...)
	return started, nil
}
