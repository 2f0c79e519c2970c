package restaurant

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/queue"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/model/stats"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// Option customizes a Restaurant.
type Option func(*Restaurant)

// WithClock replaces time.Now for order timestamps and reports.
func WithClock(now func() time.Time) Option {
	return func(r *Restaurant) {
		r.now = now
	}
}

// WithFirstOrderID sets the id given to the next admitted order.
func WithFirstOrderID(id int64) Option {
	return func(r *Restaurant) {
		if id > 0 {
			r.nextOrderID = id
		}
	}
}

// Restaurant coordinates orders from admission to delivery.
type Restaurant struct {
	mu sync.Mutex

	name    string
	address string

	catalog    *menu.Catalog
	roster     *staff.Roster
	customers  map[int64]*customer.Customer
	queue      *queue.OrderQueue
	orders     map[int64]*order.Order
	stats      *stats.Statistics
	dispatcher services.OrderDispatcher

	isOpen      bool
	openedAt    time.Time
	nextOrderID int64
	now         func() time.Time
}

// New creates a closed restaurant with empty menu, roster and registry.
func New(name, address string, opts ...Option) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("restaurant name")
	}

	r := &Restaurant{
		name:        name,
		address:     strings.TrimSpace(address),
		catalog:     menu.NewCatalog(),
		roster:      staff.NewRoster(),
		customers:   make(map[int64]*customer.Customer),
		queue:       queue.New(),
		orders:      make(map[int64]*order.Order),
		stats:       stats.New(),
		dispatcher:  services.NewOrderDispatcher(),
		nextOrderID: 1,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() string {
	return r.address
}

func (r *Restaurant) IsOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isOpen
}

// Open starts business. It needs at least one chef and one courier.
func (r *Restaurant) Open() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isOpen {
		return errs.NewInvalidStateError("open", "already open")
	}
	h := r.roster.Headcount()
	if h.Chefs == 0 {
		return errs.NewInvalidStateError("open", "no chef is registered")
	}
	if h.Couriers == 0 {
		return errs.NewInvalidStateError("open", "no delivery staff is registered")
	}

	r.isOpen = true
	r.openedAt = r.now()
	return nil
}

// Close stops business and returns the day's report.
func (r *Restaurant) Close() (Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isOpen {
		return Report{}, errs.NewInvalidStateError("close", "already closed")
	}
	r.isOpen = false
	return r.report(), nil
}

// AddChef registers a chef. Staff ids are unique across chefs and couriers.
func (r *Restaurant) AddChef(c *staff.Chef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roster.AddChef(c)
}

// AddDeliveryStaff registers a courier.
func (r *Restaurant) AddDeliveryStaff(c *staff.Courier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roster.AddCourier(c)
}

// FindStaffByID looks a member up in either role.
func (r *Restaurant) FindStaffByID(id string) (staff.Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roster.Find(id)
}

// RegisterCustomer adds c to the registry.
func (r *Restaurant) RegisterCustomer(c *customer.Customer) error {
	if c == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if err := c.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[c.ID()]; exists {
		return errs.NewObjectAlreadyExistsError("customer", c.ID())
	}
	r.customers[c.ID()] = c
	return nil
}

func (r *Restaurant) FindCustomerByID(id int64) (*customer.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	return c, ok
}

// AddMenuItem stores a copy of item, so later availability changes never reach the
// caller's value.
func (r *Restaurant) AddMenuItem(item *menu.MenuItem) error {
	if item == nil {
		return errs.NewValueIsRequiredError("menu item")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.catalog.Add(item.Clone())
}

// RemoveMenuItem reports whether an item was removed. Unknown ids are ignored.
func (r *Restaurant) RemoveMenuItem(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.catalog.Remove(id)
}

func (r *Restaurant) SetMenuItemAvailability(id int, available bool) (*menu.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.catalog.SetAvailability(id, available)
	if err != nil {
		return nil, err
	}
	return item.Clone(), nil
}

func (r *Restaurant) FindMenuItem(id int) (*menu.MenuItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.catalog.Find(id)
	return item.Clone(), ok
}

// Menu lists every item ordered by id.
func (r *Restaurant) Menu() []*menu.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.catalog.List()
	for i, item := range items {
		items[i] = item.Clone()
	}
	return items
}

// AddToCart puts quantity units of a menu item into a registered customer's cart.
// Unavailable items are refused here as well as at admission.
func (r *Restaurant) AddToCart(customerID int64, itemID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[customerID]
	if !ok {
		return errs.NewObjectNotFoundError("customer", customerID)
	}
	item, ok := r.catalog.Find(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("menu item", itemID)
	}
	if !item.IsAvailable() {
		return menu.NewUnavailableError(item.ID(), item.Name())
	}
	return c.Cart().Add(item.Clone(), quantity)
}

// RemoveFromCart drops an item from a registered customer's cart.
func (r *Restaurant) RemoveFromCart(customerID int64, itemID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[customerID]
	if !ok {
		return false, errs.NewObjectNotFoundError("customer", customerID)
	}
	return c.Cart().Remove(itemID), nil
}

// PlaceOrder admits the cart of a registered customer.
func (r *Restaurant) PlaceOrder(customerID int64) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[customerID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", customerID)
	}
	return r.admit(c)
}

// ProcessCustomerOrder turns the customer's cart into a queued order.
//
// The order is priced from the catalog's current unit prices. If any cart item is
// missing from the menu or unavailable, nothing changes and the error names the item.
// On success the cart is cleared.
func (r *Restaurant) ProcessCustomerOrder(c *customer.Customer) (*order.Order, error) {
	if c == nil {
		return nil, errs.NewValueIsRequiredError("customer")
	}
	if err := c.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.admit(c)
}

func (r *Restaurant) admit(c *customer.Customer) (*order.Order, error) {
	if !r.isOpen {
		return nil, errs.NewInvalidStateError("place order", "closed")
	}

	var placed *order.Order
	err := c.Cart().Checkout(func(cartLines []customer.Line) error {
		if len(cartLines) == 0 {
			return order.ErrEmptyCart
		}

		lines := make([]order.Line, 0, len(cartLines))
		for _, cl := range cartLines {
			item, ok := r.catalog.Find(cl.Item.ID())
			if !ok || !item.IsAvailable() {
				return menu.NewUnavailableError(cl.Item.ID(), cl.Item.Name())
			}
			line, err := order.NewLine(item.ID(), item.Name(), cl.Quantity, item.Price())
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		o, err := order.NewOrder(r.nextOrderID, c.ID(), lines, r.now())
		if err != nil {
			return err
		}
		if err := r.queue.Push(o); err != nil {
			return err
		}

		r.nextOrderID++
		r.orders[o.ID()] = o
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed.Clone(), nil
}

// ProcessKitchenQueue hands queued orders to free chefs, highest priority first, until
// the queue is empty or every chef is busy. It does nothing while the restaurant is
// closed. The returned orders are the ones that started preparing.
func (r *Restaurant) ProcessKitchenQueue() []*order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isOpen {
		return nil
	}

	var started []*order.Order
	for {
		next, ok := r.queue.Peek()
		if !ok {
			break
		}
		if _, err := r.dispatcher.DispatchToKitchen(next, r.roster.Chefs()); err != nil {
			break
		}
		r.queue.Pop()
		started = append(started, next.Clone())
	}
	return started
}

// CompleteOrder marks a Preparing order ready for delivery, frees its chef and
// records the sale.
func (r *Restaurant) CompleteOrder(orderID int64, chefID string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, order.NewNotFoundError(orderID)
	}
	chef, ok := r.roster.FindChef(chefID)
	if !ok {
		return nil, unknownStaff(o, order.OpComplete, "chef", chefID)
	}
	if err := r.dispatcher.FinishCooking(o, chef); err != nil {
		return nil, err
	}

	r.stats.RecordCompleted(o)
	return o.Clone(), nil
}

// DeliverOrder sends a ReadyForDelivery order out with a courier. An empty courierID
// picks the first available courier.
func (r *Restaurant) DeliverOrder(orderID int64, courierID string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, order.NewNotFoundError(orderID)
	}
	if o.Status() != order.ReadyForDelivery {
		return nil, order.NewInvalidStateError(o.ID(), o.Status(), order.OpDispatchForDelivery)
	}

	if courierID == "" {
		if _, err := r.dispatcher.DispatchToAnyCourier(o, r.roster.Couriers()); err != nil {
			if errors.Is(err, services.ErrCourierNotFound) {
				return nil, staffMismatch(o, order.OpDispatchForDelivery, "every courier is busy")
			}
			return nil, err
		}
		return o.Clone(), nil
	}

	courier, ok := r.roster.FindCourier(courierID)
	if !ok {
		return nil, unknownStaff(o, order.OpDispatchForDelivery, "courier", courierID)
	}
	if !courier.IsAvailable() {
		return nil, staffMismatch(o, order.OpDispatchForDelivery, "courier "+courierID+" is busy")
	}
	if err := r.dispatcher.DispatchToCourier(o, courier); err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

// ConfirmDelivery marks an OutForDelivery order delivered and frees its courier.
func (r *Restaurant) ConfirmDelivery(orderID int64, courierID string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, order.NewNotFoundError(orderID)
	}
	courier, ok := r.roster.FindCourier(courierID)
	if !ok {
		return nil, unknownStaff(o, order.OpConfirmDelivery, "courier", courierID)
	}
	if err := r.dispatcher.FinishDelivery(o, courier); err != nil {
		return nil, err
	}

	r.stats.RecordDelivered()
	return o.Clone(), nil
}

// CancelOrder withdraws a Placed order from the kitchen queue.
func (r *Restaurant) CancelOrder(orderID int64) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, order.NewNotFoundError(orderID)
	}
	if err := o.Cancel(); err != nil {
		return nil, err
	}
	r.queue.Remove(orderID)
	return o.Clone(), nil
}

func (r *Restaurant) FindOrderByID(id int64) (*order.Order, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	return o.Clone(), ok
}

// QueuedOrders lists the waiting orders in the order chefs will take them.
func (r *Restaurant) QueuedOrders() []*order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	queued := r.queue.Orders()
	for i, o := range queued {
		queued[i] = o.Clone()
	}
	return queued
}

// Orders lists every admitted order with the given status, by id. Unknown lists all.
func (r *Restaurant) Orders(status order.Status) []*order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*order.Order
	for _, o := range r.orders {
		if status == order.Unknown || o.Status() == status {
			out = append(out, o.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *order.Order) int { return cmp.Compare(a.ID(), b.ID()) })
	return out
}

func unknownStaff(o *order.Order, operation, role, id string) error {
	return staffMismatch(o, operation, "unknown "+role+" "+id)
}

func staffMismatch(o *order.Order, operation, reason string) error {
	err := order.NewInvalidStateError(o.ID(), o.Status(), operation)
	err.Reason = reason
	return err
}
