package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/ports"
)

// ConfirmDeliveryCommandHandler closes a delivery, frees the courier and archives the order.
type ConfirmDeliveryCommandHandler struct {
	restaurant *restaurant.Restaurant
	events     eventSink
	archive    archiver
}

// NewConfirmDeliveryCommandHandler builds the handler. uowFactory may be nil when no
// archive is configured.
func NewConfirmDeliveryCommandHandler(
	r *restaurant.Restaurant,
	uowFactory ArchiveUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	events := newEventSink(publisher, logger)
	return ConfirmDeliveryCommandHandler{
		restaurant: r,
		events:     events,
		archive:    archiver{factory: uowFactory, logger: events.logger},
	}
}

func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if h.restaurant == nil {
		return nil, ErrRestaurantIsRequired
	}

	o, err := h.restaurant.ConfirmDelivery(cmd.OrderID(), cmd.CourierID())
	if err != nil {
		return nil, err
	}

	h.archive.store(ctx, o)
	h.events.emit(ctx, order.OutForDelivery, courierOf, o)
	return o, nil
}
