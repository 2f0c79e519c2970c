package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID int64) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockMenuRepository) Get(ctx context.Context, id int) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}
func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*menu.MenuItem)
	return items, args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, member staff.Member) error {
	return m.Called(ctx, member).Error(0)
}
func (m *MockStaffRepository) GetAllChefs(ctx context.Context) ([]*staff.Chef, error) {
	args := m.Called(ctx)
	chefs, _ := args.Get(0).([]*staff.Chef)
	return chefs, args.Error(1)
}
func (m *MockStaffRepository) GetAllCouriers(ctx context.Context) ([]*staff.Courier, error) {
	args := m.Called(ctx)
	couriers, _ := args.Get(0).([]*staff.Courier)
	return couriers, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*customer.Customer)
	return customers, args.Error(1)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockTx) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockTx) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockArchiveUoW struct{ MockTx }

func (m *MockArchiveUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockArchiveUoWFactory struct{ mock.Mock }

func (m *MockArchiveUoWFactory) Create() commands.ArchiveUoW {
	return m.Called().Get(0).(commands.ArchiveUoW)
}

type MockSeedUoW struct{ MockTx }

func (m *MockSeedUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}
func (m *MockSeedUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}
func (m *MockSeedUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

type MockSeedUoWFactory struct{ mock.Mock }

func (m *MockSeedUoWFactory) Create() commands.SeedUoW {
	return m.Called().Get(0).(commands.SeedUoW)
}

// eventsTo matches a published batch whose events all end in the given status.
func eventsTo(status order.Status, n int) any {
	return mock.MatchedBy(func(events []order.StatusChanged) bool {
		if len(events) != n {
			return false
		}
		for _, e := range events {
			if e.To != status {
				return false
			}
		}
		return true
	})
}

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func contact(t *testing.T, name string) kernel.Contact {
	t.Helper()
	c, err := kernel.NewContact(name, "7 Tater Road", "555-0199")
	require.NoError(t, err)
	return c
}

func newChef(t *testing.T, id string) *staff.Chef {
	t.Helper()
	c, err := staff.NewChef(id, contact(t, "Chef "+id))
	require.NoError(t, err)
	return c
}

func newCourier(t *testing.T, id string) *staff.Courier {
	t.Helper()
	c, err := staff.NewCourier(id, contact(t, "Courier "+id))
	require.NoError(t, err)
	return c
}

func newItem(t *testing.T, id int, name, price string) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(id, name, kernel.MustMoney(price), menu.Baked, menu.Russet, true)
	require.NoError(t, err)
	return item
}

func newCustomer(t *testing.T, id int64) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, contact(t, "Guest"))
	require.NoError(t, err)
	return c
}

// openRestaurant returns an open restaurant with chef "c1", courier "d1",
// a baked potato (id 1) and customer 1.
func openRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.New("Spud House", "7 Tater Road", restaurant.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	require.NoError(t, r.AddChef(newChef(t, "c1")))
	require.NoError(t, r.AddDeliveryStaff(newCourier(t, "d1")))
	require.NoError(t, r.AddMenuItem(newItem(t, 1, "Baked Potato", "4.50")))
	require.NoError(t, r.RegisterCustomer(newCustomer(t, 1)))
	require.NoError(t, r.Open())
	return r
}

// placeOrder fills customer 1's cart and admits it without going through a handler.
func placeOrder(t *testing.T, r *restaurant.Restaurant, qty int) *order.Order {
	t.Helper()
	require.NoError(t, r.AddToCart(1, 1, qty))
	o, err := r.PlaceOrder(1)
	require.NoError(t, err)
	return o
}
