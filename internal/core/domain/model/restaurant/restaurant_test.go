package restaurant_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

func contact(t *testing.T, name string) kernel.Contact {
	t.Helper()
	c, err := kernel.NewContact(name, "12 Spud Lane", "555-0101")
	require.NoError(t, err)
	return c
}

func newRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.New("Spud House", "12 Spud Lane", restaurant.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return r
}

func addChef(t *testing.T, r *restaurant.Restaurant, id string) *staff.Chef {
	t.Helper()
	c, err := staff.NewChef(id, contact(t, "Chef "+id))
	require.NoError(t, err)
	require.NoError(t, r.AddChef(c))
	return c
}

func addCourier(t *testing.T, r *restaurant.Restaurant, id string) *staff.Courier {
	t.Helper()
	c, err := staff.NewCourier(id, contact(t, "Courier "+id))
	require.NoError(t, err)
	require.NoError(t, r.AddDeliveryStaff(c))
	return c
}

func addItem(t *testing.T, r *restaurant.Restaurant, id int, name, price string) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(id, name, kernel.MustMoney(price), menu.Fried, menu.Russet, true)
	require.NoError(t, err)
	require.NoError(t, r.AddMenuItem(item))
	return item
}

func addCustomer(t *testing.T, r *restaurant.Restaurant, id int64) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, contact(t, fmt.Sprintf("Customer %d", id)))
	require.NoError(t, err)
	require.NoError(t, r.RegisterCustomer(c))
	return c
}

// openRestaurant returns an open restaurant with chef C1, courier D1, Fries (id 1,
// 3.50) and Mash (id 2, 4.00) on the menu and customers 1 and 2 registered.
func openRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r := newRestaurant(t)
	addChef(t, r, "C1")
	addCourier(t, r, "D1")
	addItem(t, r, 1, "Fries", "3.50")
	addItem(t, r, 2, "Mash", "4.00")
	addCustomer(t, r, 1)
	addCustomer(t, r, 2)
	require.NoError(t, r.Open())
	return r
}

func place(t *testing.T, r *restaurant.Restaurant, customerID int64, itemID, qty int) *order.Order {
	t.Helper()
	require.NoError(t, r.AddToCart(customerID, itemID, qty))
	o, err := r.PlaceOrder(customerID)
	require.NoError(t, err)
	return o
}

func TestNew(t *testing.T) {
	t.Run("should start closed", func(t *testing.T) {
		r := newRestaurant(t)

		assert.False(t, r.IsOpen())
		assert.Equal(t, "Spud House", r.Name())
		assert.Equal(t, "12 Spud Lane", r.Address())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := restaurant.New(" ", "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestaurant_OpenClose(t *testing.T) {
	t.Run("should refuse to open without staff", func(t *testing.T) {
		r := newRestaurant(t)

		assert.ErrorIs(t, r.Open(), errs.ErrInvalidState)

		addChef(t, r, "C1")
		assert.ErrorIs(t, r.Open(), errs.ErrInvalidState)
		assert.False(t, r.IsOpen())
	})

	t.Run("should refuse to open twice", func(t *testing.T) {
		r := newRestaurant(t)
		addChef(t, r, "C1")
		addCourier(t, r, "D1")

		require.NoError(t, r.Open())

		assert.ErrorIs(t, r.Open(), errs.ErrInvalidState)
		assert.Equal(t, fixedNow, r.Status().OpenedAt)
	})

	t.Run("should refuse to close a closed restaurant", func(t *testing.T) {
		r := newRestaurant(t)

		_, err := r.Close()

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should produce a report on close", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 2)
		r.ProcessKitchenQueue()
		_, err := r.CompleteOrder(o.ID(), "C1")
		require.NoError(t, err)

		report, err := r.Close()

		require.NoError(t, err)
		assert.False(t, r.IsOpen())
		assert.Equal(t, "Spud House", report.Restaurant)
		assert.Equal(t, 1, report.OrdersProcessed)
		assert.Equal(t, "7.00", report.TotalRevenue.String())
		require.Len(t, report.TopItems, 1)
		assert.Equal(t, "Fries", report.TopItems[0].Name)
	})
}

func TestRestaurant_Staff(t *testing.T) {
	t.Run("should find staff by id regardless of role", func(t *testing.T) {
		r := newRestaurant(t)
		chef := addChef(t, r, "C1")
		courier := addCourier(t, r, "D1")

		m, ok := r.FindStaffByID("C1")
		require.True(t, ok)
		assert.Same(t, chef, m)

		m, ok = r.FindStaffByID("D1")
		require.True(t, ok)
		assert.Same(t, courier, m)

		_, ok = r.FindStaffByID("nobody")
		assert.False(t, ok)
	})

	t.Run("should reject duplicate ids across roles without changing the roster", func(t *testing.T) {
		r := newRestaurant(t)
		addChef(t, r, "S1")
		courier, err := staff.NewCourier("S1", contact(t, "Twin"))
		require.NoError(t, err)

		err = r.AddDeliveryStaff(courier)

		assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Zero(t, r.Status().TotalDeliveryStaff)
	})

	t.Run("should reject nil staff", func(t *testing.T) {
		r := newRestaurant(t)

		assert.ErrorIs(t, r.AddChef(nil), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, r.AddDeliveryStaff(nil), errs.ErrValueIsInvalid)
	})
}

func TestRestaurant_Customers(t *testing.T) {
	t.Run("should register and find customers", func(t *testing.T) {
		r := newRestaurant(t)
		c := addCustomer(t, r, 5)

		found, ok := r.FindCustomerByID(5)
		require.True(t, ok)
		assert.Same(t, c, found)

		_, ok = r.FindCustomerByID(6)
		assert.False(t, ok)
	})

	t.Run("should reject nil and duplicate customers", func(t *testing.T) {
		r := newRestaurant(t)
		addCustomer(t, r, 5)
		dup, err := customer.NewCustomer(5, contact(t, "Dup"))
		require.NoError(t, err)

		assert.ErrorIs(t, r.RegisterCustomer(nil), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, r.RegisterCustomer(dup), errs.ErrObjectAlreadyExists)
	})
}

func TestRestaurant_Menu(t *testing.T) {
	t.Run("should ignore removal of unknown items", func(t *testing.T) {
		r := newRestaurant(t)
		addItem(t, r, 1, "Fries", "3.50")

		assert.False(t, r.RemoveMenuItem(42))
		assert.Len(t, r.Menu(), 1)
	})

	t.Run("should show availability changes immediately", func(t *testing.T) {
		r := newRestaurant(t)
		addItem(t, r, 1, "Fries", "3.50")

		updated, err := r.SetMenuItemAvailability(1, false)
		require.NoError(t, err)
		assert.False(t, updated.IsAvailable())

		found, ok := r.FindMenuItem(1)
		require.True(t, ok)
		assert.False(t, found.IsAvailable())
	})

	t.Run("should fail availability change for unknown item", func(t *testing.T) {
		r := newRestaurant(t)

		_, err := r.SetMenuItemAvailability(9, true)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject duplicate item ids", func(t *testing.T) {
		r := newRestaurant(t)
		addItem(t, r, 1, "Fries", "3.50")
		dup, _ := menu.NewMenuItem(1, "Other", kernel.MustMoney("1"), menu.Baked, menu.Russet, true)

		assert.ErrorIs(t, r.AddMenuItem(dup), errs.ErrObjectAlreadyExists)
	})

	t.Run("should keep the added value apart from the catalog", func(t *testing.T) {
		r := newRestaurant(t)
		item := addItem(t, r, 9, "Hash Browns", "2.75")

		_, err := r.SetMenuItemAvailability(9, false)
		require.NoError(t, err)

		assert.True(t, item.IsAvailable())
		found, ok := r.FindMenuItem(9)
		require.True(t, ok)
		assert.False(t, found.IsAvailable())
	})
}

func TestRestaurant_Admission(t *testing.T) {
	t.Run("should create a placed order and clear the cart", func(t *testing.T) {
		r := openRestaurant(t)
		require.NoError(t, r.AddToCart(1, 1, 2))
		require.NoError(t, r.AddToCart(1, 2, 1))

		o, err := r.PlaceOrder(1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "11.00", o.Total().String())
		assert.Equal(t, fixedNow, o.CreatedAt())
		c, _ := r.FindCustomerByID(1)
		assert.True(t, c.Cart().IsEmpty())
		assert.Equal(t, 1, r.Status().OrdersInQueue)
	})

	t.Run("should fail while closed without touching queue or cart", func(t *testing.T) {
		r := newRestaurant(t)
		addItem(t, r, 1, "Fries", "3.50")
		c := addCustomer(t, r, 1)
		require.NoError(t, r.AddToCart(1, 1, 1))

		_, err := r.ProcessCustomerOrder(c)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, 1, c.Cart().TotalQuantity())
		assert.Empty(t, r.QueuedOrders())
	})

	t.Run("should fail on an empty cart", func(t *testing.T) {
		r := openRestaurant(t)

		_, err := r.PlaceOrder(1)

		assert.ErrorIs(t, err, order.ErrEmptyCart)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on an unavailable item and keep the cart", func(t *testing.T) {
		r := openRestaurant(t)
		require.NoError(t, r.AddToCart(1, 1, 1))
		require.NoError(t, r.AddToCart(1, 2, 1))
		_, err := r.SetMenuItemAvailability(2, false)
		require.NoError(t, err)

		_, err = r.PlaceOrder(1)

		var unavailable *menu.UnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, 2, unavailable.ItemID)
		assert.Equal(t, "Mash", unavailable.ItemName)
		c, _ := r.FindCustomerByID(1)
		assert.Equal(t, 2, c.Cart().TotalQuantity())
		assert.Empty(t, r.QueuedOrders())

		next := place(t, r, 2, 1, 1)
		assert.Equal(t, int64(1), next.ID(), "failed admission must not consume an order id")
	})

	t.Run("should fail on an item removed from the menu", func(t *testing.T) {
		r := openRestaurant(t)
		require.NoError(t, r.AddToCart(1, 1, 1))
		r.RemoveMenuItem(1)

		_, err := r.PlaceOrder(1)

		assert.ErrorIs(t, err, menu.ErrMenuItemUnavailable)
		c, _ := r.FindCustomerByID(1)
		assert.Equal(t, 1, c.Cart().TotalQuantity(), "a refused order leaves the cart alone")
	})

	t.Run("should admit unregistered customers passed directly", func(t *testing.T) {
		r := openRestaurant(t)
		item, _ := r.FindMenuItem(1)
		walkIn, err := customer.NewCustomer(99, contact(t, "Walk In"))
		require.NoError(t, err)
		require.NoError(t, walkIn.Cart().Add(item, 1))

		o, err := r.ProcessCustomerOrder(walkIn)

		require.NoError(t, err)
		assert.Equal(t, int64(99), o.CustomerID())
	})

	t.Run("should reject nil customer", func(t *testing.T) {
		r := openRestaurant(t)

		_, err := r.ProcessCustomerOrder(nil)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should refuse cart operations for unknown customers and items", func(t *testing.T) {
		r := openRestaurant(t)

		assert.ErrorIs(t, r.AddToCart(42, 1, 1), errs.ErrObjectNotFound)
		assert.ErrorIs(t, r.AddToCart(1, 42, 1), errs.ErrObjectNotFound)
		assert.ErrorIs(t, r.AddToCart(1, 1, 0), errs.ErrValueIsInvalid)
		_, err := r.PlaceOrder(42)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should remove items from a cart", func(t *testing.T) {
		r := openRestaurant(t)
		require.NoError(t, r.AddToCart(1, 1, 1))

		removed, err := r.RemoveFromCart(1, 1)

		require.NoError(t, err)
		assert.True(t, removed)
		_, err = r.RemoveFromCart(42, 1)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should queue a one-unit order ahead of an earlier ten-unit order", func(t *testing.T) {
		r := openRestaurant(t)
		big := place(t, r, 1, 1, 10)
		small := place(t, r, 2, 2, 1)

		queued := r.QueuedOrders()

		require.Len(t, queued, 2)
		assert.Equal(t, small.ID(), queued[0].ID())
		assert.Equal(t, big.ID(), queued[1].ID())
	})
}

func TestRestaurant_ProcessKitchenQueue(t *testing.T) {
	t.Run("should start preparing with a free chef", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 1)

		started := r.ProcessKitchenQueue()

		require.Len(t, started, 1)
		found, _ := r.FindOrderByID(o.ID())
		assert.Equal(t, order.Preparing, found.Status())
		assert.Equal(t, "C1", found.ChefID())
		chef, _ := r.FindStaffByID("C1")
		assert.Equal(t, []int64{o.ID()}, chef.AssignedOrders())
	})

	t.Run("should leave the queue untouched when every chef is busy", func(t *testing.T) {
		r := openRestaurant(t)
		place(t, r, 1, 1, 1)
		second := place(t, r, 2, 1, 1)
		r.ProcessKitchenQueue()

		started := r.ProcessKitchenQueue()

		assert.Empty(t, started)
		queued := r.QueuedOrders()
		require.Len(t, queued, 1)
		assert.Equal(t, second.ID(), queued[0].ID())
		assert.Equal(t, order.Placed, queued[0].Status())
	})

	t.Run("should be a no-op on an empty queue", func(t *testing.T) {
		r := openRestaurant(t)

		assert.Empty(t, r.ProcessKitchenQueue())
		assert.Empty(t, r.ProcessKitchenQueue())
	})

	t.Run("should do nothing while closed", func(t *testing.T) {
		r := openRestaurant(t)
		place(t, r, 1, 1, 1)
		_, err := r.Close()
		require.NoError(t, err)

		assert.Empty(t, r.ProcessKitchenQueue())
		assert.Equal(t, 1, r.Status().OrdersInQueue)
	})

	t.Run("should spread orders across free chefs by priority", func(t *testing.T) {
		r := openRestaurant(t)
		addChef(t, r, "C2")
		big := place(t, r, 1, 1, 9)
		small := place(t, r, 2, 1, 1)

		started := r.ProcessKitchenQueue()

		require.Len(t, started, 2)
		assert.Equal(t, small.ID(), started[0].ID())
		assert.Equal(t, "C1", started[0].ChefID())
		assert.Equal(t, big.ID(), started[1].ID())
		assert.Equal(t, "C2", started[1].ChefID())
	})
}

func TestRestaurant_CompleteOrder(t *testing.T) {
	t.Run("should free the chef and record statistics", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 2)
		r.ProcessKitchenQueue()
		before := r.Stats()

		done, err := r.CompleteOrder(o.ID(), "C1")

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForDelivery, done.Status())
		chef, _ := r.FindStaffByID("C1")
		assert.True(t, chef.IsAvailable())
		after := r.Stats()
		assert.Equal(t, before.TotalOrdersProcessed+1, after.TotalOrdersProcessed)
		assert.True(t, after.TotalRevenue.IsEqual(before.TotalRevenue.Add(o.Total())))
		assert.Equal(t, 2, after.PopularItems["Fries"])
	})

	t.Run("should report unknown orders whether open or closed", func(t *testing.T) {
		r := openRestaurant(t)

		_, err := r.CompleteOrder(404, "C1")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
		_, err = r.DeliverOrder(404, "D1")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)

		_, err = r.Close()
		require.NoError(t, err)

		_, err = r.CompleteOrder(404, "C1")
		var nf *order.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, int64(404), nf.OrderID)
		_, err = r.DeliverOrder(404, "D1")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("should refuse orders that are not preparing", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 1)

		_, err := r.CompleteOrder(o.ID(), "C1")

		var stateErr *order.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, o.ID(), stateErr.OrderID)
		assert.Equal(t, order.Placed, stateErr.Status)
		assert.Equal(t, order.OpComplete, stateErr.Operation)
	})

	t.Run("should refuse a chef the order is not assigned to", func(t *testing.T) {
		r := openRestaurant(t)
		addChef(t, r, "C2")
		o := place(t, r, 1, 1, 1)
		r.ProcessKitchenQueue()

		_, err := r.CompleteOrder(o.ID(), "C2")
		assert.ErrorIs(t, err, order.ErrInvalidOrderState)

		_, err = r.CompleteOrder(o.ID(), "ghost")
		assert.ErrorIs(t, err, order.ErrInvalidOrderState)
		assert.Zero(t, r.Stats().TotalOrdersProcessed)
	})
}

func TestRestaurant_Delivery(t *testing.T) {
	ready := func(t *testing.T, r *restaurant.Restaurant) *order.Order {
		t.Helper()
		o := place(t, r, 1, 1, 1)
		r.ProcessKitchenQueue()
		_, err := r.CompleteOrder(o.ID(), "C1")
		require.NoError(t, err)
		return o
	}

	t.Run("should dispatch and then confirm as separate transitions", func(t *testing.T) {
		r := openRestaurant(t)
		o := ready(t, r)

		out, err := r.DeliverOrder(o.ID(), "D1")
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, out.Status())
		assert.Zero(t, r.Status().AvailableDeliveryStaff)

		delivered, err := r.ConfirmDelivery(o.ID(), "D1")
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, delivered.Status())
		assert.Equal(t, 1, r.Status().AvailableDeliveryStaff)
		assert.Equal(t, 1, r.Stats().OrdersDelivered)
		courier, _ := r.FindStaffByID("D1")
		assert.Equal(t, []int64{o.ID()}, courier.CompletedOrders())
	})

	t.Run("should refuse to confirm before dispatch", func(t *testing.T) {
		r := openRestaurant(t)
		o := ready(t, r)

		_, err := r.ConfirmDelivery(o.ID(), "D1")

		assert.ErrorIs(t, err, order.ErrInvalidOrderState)
	})

	t.Run("should refuse to dispatch orders still in the kitchen", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 1)

		_, err := r.DeliverOrder(o.ID(), "D1")

		assert.ErrorIs(t, err, order.ErrInvalidOrderState)
	})

	t.Run("should refuse a courier that is not carrying the order", func(t *testing.T) {
		r := openRestaurant(t)
		addCourier(t, r, "D2")
		o := ready(t, r)
		_, err := r.DeliverOrder(o.ID(), "D1")
		require.NoError(t, err)

		_, err = r.ConfirmDelivery(o.ID(), "D2")

		assert.ErrorIs(t, err, order.ErrInvalidOrderState)
	})

	t.Run("should pick a free courier when none is named", func(t *testing.T) {
		r := openRestaurant(t)
		o := ready(t, r)

		out, err := r.DeliverOrder(o.ID(), "")

		require.NoError(t, err)
		assert.Equal(t, "D1", out.CourierID())
	})

	t.Run("should report busy couriers", func(t *testing.T) {
		r := openRestaurant(t)
		addChef(t, r, "C2")
		first := place(t, r, 1, 1, 1)
		second := place(t, r, 2, 1, 1)
		r.ProcessKitchenQueue()
		_, err := r.CompleteOrder(first.ID(), "C1")
		require.NoError(t, err)
		_, err = r.CompleteOrder(second.ID(), "C2")
		require.NoError(t, err)
		_, err = r.DeliverOrder(first.ID(), "D1")
		require.NoError(t, err)

		_, err = r.DeliverOrder(second.ID(), "")
		assert.ErrorIs(t, err, order.ErrInvalidOrderState)
		assert.ErrorContains(t, err, "every courier is busy")
		_, err = r.DeliverOrder(second.ID(), "D1")
		assert.ErrorIs(t, err, order.ErrInvalidOrderState)
		assert.ErrorContains(t, err, "courier D1 is busy")
	})

	t.Run("should refuse an unknown courier as an order state mismatch", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 1)
		r.ProcessKitchenQueue()
		_, err := r.CompleteOrder(o.ID(), "C1")
		require.NoError(t, err)

		_, err = r.DeliverOrder(o.ID(), "ghost")

		assert.ErrorIs(t, err, order.ErrInvalidOrderState)
		assert.ErrorContains(t, err, "unknown courier ghost")
		found, _ := r.FindOrderByID(o.ID())
		assert.Equal(t, order.ReadyForDelivery, found.Status())
	})
}

func TestRestaurant_CancelOrder(t *testing.T) {
	t.Run("should withdraw a placed order", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 1)

		cancelled, err := r.CancelOrder(o.ID())

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, cancelled.Status())
		assert.Empty(t, r.QueuedOrders())
		assert.Len(t, r.Orders(order.Cancelled), 1)
	})

	t.Run("should refuse orders already in the kitchen", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 1)
		r.ProcessKitchenQueue()

		_, err := r.CancelOrder(o.ID())

		assert.ErrorIs(t, err, order.ErrInvalidOrderState)
	})

	t.Run("should report unknown orders", func(t *testing.T) {
		r := openRestaurant(t)

		_, err := r.CancelOrder(3)

		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestRestaurant_Projections(t *testing.T) {
	t.Run("should describe the restaurant", func(t *testing.T) {
		r := openRestaurant(t)
		addChef(t, r, "C2")
		place(t, r, 1, 1, 1)
		place(t, r, 2, 1, 1)
		place(t, r, 1, 2, 1)
		r.ProcessKitchenQueue()

		s := r.Status()

		assert.True(t, s.IsOpen)
		assert.Equal(t, 1, s.OrdersInQueue)
		assert.Equal(t, 2, s.TotalChefs)
		assert.Zero(t, s.AvailableChefs)
		assert.Equal(t, 1, s.TotalDeliveryStaff)
		assert.Equal(t, 1, s.AvailableDeliveryStaff)
		assert.True(t, s.TotalRevenue.IsZero())
	})

	t.Run("should return clones that do not leak state", func(t *testing.T) {
		r := openRestaurant(t)
		o := place(t, r, 1, 1, 1)

		require.NoError(t, o.Cancel())

		found, _ := r.FindOrderByID(o.ID())
		assert.Equal(t, order.Placed, found.Status())
		_, ok := r.FindOrderByID(999)
		assert.False(t, ok)
	})

	t.Run("should list orders by status", func(t *testing.T) {
		r := openRestaurant(t)
		place(t, r, 1, 1, 1)
		place(t, r, 2, 1, 1)
		r.ProcessKitchenQueue()

		assert.Len(t, r.Orders(order.Unknown), 2)
		assert.Len(t, r.Orders(order.Preparing), 1)
		assert.Len(t, r.Orders(order.Placed), 1)
	})
}

func TestRestaurant_ConcurrentDispatch(t *testing.T) {
	r := openRestaurant(t)
	addChef(t, r, "C2")
	for i := 0; i < 20; i++ {
		place(t, r, int64(i%2+1), 1, 1)
	}

	var wg sync.WaitGroup
	results := make(chan []*order.Order, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- r.ProcessKitchenQueue()
		}()
	}
	wg.Wait()
	close(results)

	total := 0
	for started := range results {
		total += len(started)
	}
	assert.Equal(t, 2, total, "each chef must receive exactly one order")
	assert.Equal(t, 18, r.Status().OrdersInQueue)
}

func TestRestaurant_ConcurrentMenuUpdates(t *testing.T) {
	r := newRestaurant(t)
	item := addItem(t, r, 9, "Hash Browns", "2.75")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(available bool) {
			defer wg.Done()
			_, _ = r.SetMenuItemAvailability(9, available)
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			_ = item.IsAvailable()
			if found, ok := r.FindMenuItem(9); ok {
				_ = found.IsAvailable()
			}
		}()
	}
	wg.Wait()

	assert.True(t, item.IsAvailable())
}
