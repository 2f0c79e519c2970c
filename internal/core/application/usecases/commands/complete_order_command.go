package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
	ErrChefIDIsRequired = errs.NewValueIsRequiredError("chef id")
)

// CompleteOrderCommand reports that a chef has finished cooking an order.
type CompleteOrderCommand struct {
	orderID int64
	chefID  string

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID int64, chefID string) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChefID(chefID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c CompleteOrderCommand) ChefID() string {
	return c.chefID
}

func (c *CompleteOrderCommand) setOrderID(orderID int64) error {
	return setPositiveOrderID(&c.orderID, orderID)
}

func (c *CompleteOrderCommand) setChefID(chefID string) error {
	chefID = strings.TrimSpace(chefID)
	if chefID == "" {
		return ErrChefIDIsRequired
	}
	c.chefID = chefID
	return nil
}

func setPositiveOrderID(dst *int64, orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", orderID))
	}
	*dst = orderID
	return nil
}
