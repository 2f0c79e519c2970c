package restaurant_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/cucumber/godog"
)

type lifecycleContext struct {
	r   *restaurant.Restaurant
	err error
}

func (c *lifecycleContext) reset() {
	c.r = nil
	c.err = nil
}

func (c *lifecycleContext) aRestaurantNamed(name string) error {
	r, err := restaurant.New(name, "")
	c.r = r
	return err
}

func (c *lifecycleContext) aChef(id string) error {
	ct, err := kernel.NewContact("Chef "+id, "", "")
	if err != nil {
		return err
	}
	chef, err := staff.NewChef(id, ct)
	if err != nil {
		return err
	}
	return c.r.AddChef(chef)
}

func (c *lifecycleContext) aCourier(id string) error {
	ct, err := kernel.NewContact("Courier "+id, "", "")
	if err != nil {
		return err
	}
	courier, err := staff.NewCourier(id, ct)
	if err != nil {
		return err
	}
	return c.r.AddDeliveryStaff(courier)
}

func (c *lifecycleContext) iHireCourier(id string) error {
	c.err = c.aCourier(id)
	return nil
}

func (c *lifecycleContext) aMenuItemPriced(id int, name, price string) error {
	amount, err := kernel.MoneyFromString(price)
	if err != nil {
		return err
	}
	item, err := menu.NewMenuItem(id, name, amount, menu.Fried, menu.Russet, true)
	if err != nil {
		return err
	}
	return c.r.AddMenuItem(item)
}

func (c *lifecycleContext) aRegisteredCustomer(id int) error {
	ct, err := kernel.NewContact(fmt.Sprintf("Customer %d", id), "", "")
	if err != nil {
		return err
	}
	cust, err := customer.NewCustomer(int64(id), ct)
	if err != nil {
		return err
	}
	return c.r.RegisterCustomer(cust)
}

func (c *lifecycleContext) theRestaurantIsOpen() error {
	return c.r.Open()
}

func (c *lifecycleContext) iOpenTheRestaurant() error {
	c.err = c.r.Open()
	return nil
}

func (c *lifecycleContext) customerAddsToTheCart(customerID, qty, itemID int) error {
	return c.r.AddToCart(int64(customerID), itemID, qty)
}

func (c *lifecycleContext) itemIsUnavailable(itemID int) error {
	_, err := c.r.SetMenuItemAvailability(itemID, false)
	return err
}

func (c *lifecycleContext) customerPlacesTheOrder(customerID int) error {
	_, c.err = c.r.PlaceOrder(int64(customerID))
	return nil
}

func (c *lifecycleContext) theKitchenProcessesTheQueue() error {
	c.r.ProcessKitchenQueue()
	return nil
}

func (c *lifecycleContext) chefCompletesOrder(chefID string, orderID int) error {
	_, c.err = c.r.CompleteOrder(int64(orderID), chefID)
	return nil
}

func (c *lifecycleContext) courierTakesOrder(courierID string, orderID int) error {
	_, c.err = c.r.DeliverOrder(int64(orderID), courierID)
	return nil
}

func (c *lifecycleContext) courierDeliversOrder(courierID string, orderID int) error {
	_, c.err = c.r.ConfirmDelivery(int64(orderID), courierID)
	return nil
}

func (c *lifecycleContext) theOperationFailsWith(kind string) error {
	kinds := map[string]error{
		"InvalidArgument":     errs.ErrValueIsInvalid,
		"DuplicateId":         errs.ErrObjectAlreadyExists,
		"InvalidState":        errs.ErrInvalidState,
		"MenuItemUnavailable": menu.ErrMenuItemUnavailable,
		"OrderNotFound":       order.ErrOrderNotFound,
		"InvalidOrderState":   order.ErrInvalidOrderState,
	}
	target, ok := kinds[kind]
	if !ok {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	if !errors.Is(c.err, target) {
		return fmt.Errorf("expected %s, got %v", kind, c.err)
	}
	return nil
}

func (c *lifecycleContext) theKitchenQueueHolds(n int) error {
	if got := len(c.r.QueuedOrders()); got != n {
		return fmt.Errorf("expected %d queued orders, got %d", n, got)
	}
	return nil
}

func (c *lifecycleContext) customerHasUnitsInTheCart(customerID, n int) error {
	cust, ok := c.r.FindCustomerByID(int64(customerID))
	if !ok {
		return fmt.Errorf("customer %d not found", customerID)
	}
	if got := cust.Cart().TotalQuantity(); got != n {
		return fmt.Errorf("expected %d units in cart, got %d", n, got)
	}
	return nil
}

func (c *lifecycleContext) theNextQueuedOrderIs(orderID int) error {
	queued := c.r.QueuedOrders()
	if len(queued) == 0 {
		return errors.New("queue is empty")
	}
	if queued[0].ID() != int64(orderID) {
		return fmt.Errorf("expected order %d first, got %d", orderID, queued[0].ID())
	}
	return nil
}

func (c *lifecycleContext) orderIs(orderID int, status string) error {
	if c.err != nil {
		return fmt.Errorf("previous step failed: %w", c.err)
	}
	o, ok := c.r.FindOrderByID(int64(orderID))
	if !ok {
		return fmt.Errorf("order %d not found", orderID)
	}
	if o.Status().String() != status {
		return fmt.Errorf("expected order %d to be %s, got %s", orderID, status, o.Status())
	}
	return nil
}

func (c *lifecycleContext) staffIs(id, state string) error {
	m, ok := c.r.FindStaffByID(id)
	if !ok {
		return fmt.Errorf("staff %q not found", id)
	}
	if available := m.IsAvailable(); available != (state == "available") {
		return fmt.Errorf("expected %s to be %s", id, state)
	}
	return nil
}

func (c *lifecycleContext) theRestaurantHasProcessedOrdersFor(n int, revenue string) error {
	s := c.r.Stats()
	if s.TotalOrdersProcessed != n {
		return fmt.Errorf("expected %d processed orders, got %d", n, s.TotalOrdersProcessed)
	}
	if s.TotalRevenue.String() != revenue {
		return fmt.Errorf("expected revenue %s, got %s", revenue, s.TotalRevenue)
	}
	return nil
}

func InitializeLifecycleScenario(ctx *godog.ScenarioContext) {
	tc := &lifecycleContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a restaurant named "([^"]*)"$`, tc.aRestaurantNamed)
	ctx.Step(`^a chef "([^"]*)"$`, tc.aChef)
	ctx.Step(`^a courier "([^"]*)"$`, tc.aCourier)
	ctx.Step(`^a menu item (\d+) "([^"]*)" priced ([\d.]+)$`, tc.aMenuItemPriced)
	ctx.Step(`^a registered customer (\d+)$`, tc.aRegisteredCustomer)
	ctx.Step(`^the restaurant is open$`, tc.theRestaurantIsOpen)
	ctx.Step(`^customer (\d+) adds (\d+) of item (\d+) to the cart$`, tc.customerAddsToTheCart)
	ctx.Step(`^item (\d+) is unavailable$`, tc.itemIsUnavailable)

	// When steps
	ctx.Step(`^I open the restaurant$`, tc.iOpenTheRestaurant)
	ctx.Step(`^I hire courier "([^"]*)"$`, tc.iHireCourier)
	ctx.Step(`^customer (\d+) places the order$`, tc.customerPlacesTheOrder)
	ctx.Step(`^the kitchen processes the queue$`, tc.theKitchenProcessesTheQueue)
	ctx.Step(`^chef "([^"]*)" completes order (\d+)$`, tc.chefCompletesOrder)
	ctx.Step(`^courier "([^"]*)" takes order (\d+)$`, tc.courierTakesOrder)
	ctx.Step(`^courier "([^"]*)" delivers order (\d+)$`, tc.courierDeliversOrder)

	// Then steps
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^the kitchen queue holds (\d+) orders$`, tc.theKitchenQueueHolds)
	ctx.Step(`^customer (\d+) has (\d+) units in the cart$`, tc.customerHasUnitsInTheCart)
	ctx.Step(`^the next queued order is order (\d+)$`, tc.theNextQueuedOrderIs)
	ctx.Step(`^order (\d+) is "([^"]*)"$`, tc.orderIs)
	ctx.Step(`^(?:chef|courier) "([^"]*)" is (busy|available)$`, tc.staffIs)
	ctx.Step(`^the restaurant has processed (\d+) orders for ([\d.]+)$`, tc.theRestaurantHasProcessedOrdersFor)
}

func TestOrderLifecycleFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeLifecycleScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
