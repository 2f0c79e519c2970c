package commands

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrCourierIDIsRequired = errs.NewValueIsRequiredError("courier id")
)

// ConfirmDeliveryCommand reports that the courier handed the order to the customer.
type ConfirmDeliveryCommand struct {
	orderID   int64
	courierID string

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(orderID int64, courierID string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setPositiveOrderID(&cmd.orderID, orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() int64 {
	return c.orderID
}

func (c ConfirmDeliveryCommand) CourierID() string {
	return c.courierID
}

func (c *ConfirmDeliveryCommand) setCourierID(courierID string) error {
	courierID = strings.TrimSpace(courierID)
	if courierID == "" {
		return ErrCourierIDIsRequired
	}
	c.courierID = courierID
	return nil
}
