package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/ports"
)

// CancelOrderCommandHandler removes a Placed order from the kitchen queue and archives it.
type CancelOrderCommandHandler struct {
	restaurant *restaurant.Restaurant
	events     eventSink
	archive    archiver
}

func NewCancelOrderCommandHandler(
	r *restaurant.Restaurant,
	uowFactory ArchiveUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	events := newEventSink(publisher, logger)
	return CancelOrderCommandHandler{
		restaurant: r,
		events:     events,
		archive:    archiver{factory: uowFactory, logger: events.logger},
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if h.restaurant == nil {
		return nil, ErrRestaurantIsRequired
	}

	o, err := h.restaurant.CancelOrder(cmd.OrderID())
	if err != nil {
		return nil, err
	}

	h.archive.store(ctx, o)
	h.events.emit(ctx, order.Placed, noStaff, o)
	return o, nil
}
