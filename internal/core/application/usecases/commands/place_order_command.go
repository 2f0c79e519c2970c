package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand asks to admit the current cart of a registered customer.
//
// Example:
//
//	cmd, err := commands.NewPlaceOrderCommand(42)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(customerID int64) (PlaceOrderCommand, error) {
	if customerID <= 0 {
		return PlaceOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"customer id", fmt.Errorf("%d is not greater than 0", customerID))
	}
	return PlaceOrderCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() int64 {
	return c.customerID
}
