package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrSeedRestaurantCommandIsNotConstructed = errors.New(
	"SeedRestaurantCommand must be created via NewSeedRestaurantCommand constructor",
)

// SeedRestaurantCommand loads the stored menu, staff and customers into the
// coordinator. When open is set the restaurant is opened afterwards.
type SeedRestaurantCommand struct {
	open bool

	guard guard.ConstructorGuard
}

func NewSeedRestaurantCommand(open bool) SeedRestaurantCommand {
	return SeedRestaurantCommand{open: open, guard: guard.NewConstructorGuard()}
}

func (c SeedRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrSeedRestaurantCommandIsNotConstructed)
}

func (c SeedRestaurantCommand) Open() bool {
	return c.open
}
