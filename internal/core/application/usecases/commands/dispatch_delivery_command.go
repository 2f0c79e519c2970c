package commands

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/guard"
)

var ErrDispatchDeliveryCommandIsNotConstructed = errors.New(
	"DispatchDeliveryCommand must be created via NewDispatchDeliveryCommand constructor",
)

// DispatchDeliveryCommand hands a ready order to a courier. An empty courier id
// lets the restaurant pick the first free courier.
type DispatchDeliveryCommand struct {
	orderID   int64
	courierID string

	guard guard.ConstructorGuard
}

func NewDispatchDeliveryCommand(orderID int64, courierID string) (DispatchDeliveryCommand, error) {
	cmd := DispatchDeliveryCommand{
		courierID: strings.TrimSpace(courierID),
		guard:     guard.NewConstructorGuard(),
	}
	if err := setPositiveOrderID(&cmd.orderID, orderID); err != nil {
		return DispatchDeliveryCommand{}, err
	}
	return cmd, nil
}

func (c DispatchDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveryCommandIsNotConstructed)
}

func (c DispatchDeliveryCommand) OrderID() int64 {
	return c.orderID
}

func (c DispatchDeliveryCommand) CourierID() string {
	return c.courierID
}
