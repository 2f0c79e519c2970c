package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrProcessKitchenQueueCommandIsNotConstructed = errors.New(
	"ProcessKitchenQueueCommand must be created via NewProcessKitchenQueueCommand constructor",
)

// ProcessKitchenQueueCommand asks free chefs to take queued orders.
type ProcessKitchenQueueCommand struct {
	guard guard.ConstructorGuard
}

func NewProcessKitchenQueueCommand() ProcessKitchenQueueCommand {
	return ProcessKitchenQueueCommand{guard: guard.NewConstructorGuard()}
}

func (c ProcessKitchenQueueCommand) Validate() error {
	return c.guard.Validate(ErrProcessKitchenQueueCommandIsNotConstructed)
}
