package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandConstructors(t *testing.T) {
	t.Run("should reject non-positive ids", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewCompleteOrderCommand(-1, "c1")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewDispatchDeliveryCommand(0, "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewConfirmDeliveryCommand(0, "d1")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewCancelOrderCommand(0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require staff ids where the transition names one", func(t *testing.T) {
		_, err := commands.NewCompleteOrderCommand(1, "  ")
		assert.ErrorIs(t, err, commands.ErrChefIDIsRequired)

		_, err = commands.NewConfirmDeliveryCommand(1, "")
		assert.ErrorIs(t, err, commands.ErrCourierIDIsRequired)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := commands.NewCompleteOrderCommand(0, "")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, commands.ErrChefIDIsRequired)
	})

	t.Run("should allow dispatch without a courier", func(t *testing.T) {
		cmd, err := commands.NewDispatchDeliveryCommand(3, " ")

		require.NoError(t, err)
		assert.Equal(t, int64(3), cmd.OrderID())
		assert.Empty(t, cmd.CourierID())
	})

	t.Run("should trim and keep values", func(t *testing.T) {
		cmd, err := commands.NewCompleteOrderCommand(7, " c1 ")

		require.NoError(t, err)
		assert.Equal(t, int64(7), cmd.OrderID())
		assert.Equal(t, "c1", cmd.ChefID())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
		assert.ErrorIs(t, commands.ProcessKitchenQueueCommand{}.Validate(), commands.ErrProcessKitchenQueueCommandIsNotConstructed)
		assert.ErrorIs(t, commands.CompleteOrderCommand{}.Validate(), commands.ErrCompleteOrderCommandIsNotConstructed)
		assert.ErrorIs(t, commands.DispatchDeliveryCommand{}.Validate(), commands.ErrDispatchDeliveryCommandIsNotConstructed)
		assert.ErrorIs(t, commands.ConfirmDeliveryCommand{}.Validate(), commands.ErrConfirmDeliveryCommandIsNotConstructed)
		assert.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
		assert.ErrorIs(t, commands.SeedRestaurantCommand{}.Validate(), commands.ErrSeedRestaurantCommandIsNotConstructed)
	})
}
