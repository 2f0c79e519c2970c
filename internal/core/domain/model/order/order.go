package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer's admitted cart. It is the aggregate root of the ordering
// workflow: the restaurant coordinator owns it and drives its lifecycle.
//
// Order follows these invariants:
//   - id and customerID are positive
//   - it has at least one line
//   - total equals the sum of line prices and is fixed at creation
//   - chefID is set from Preparing onward, courierID from OutForDelivery onward
//   - status transitions follow Status only
type Order struct {
	// id is assigned by the coordinator, monotonically increasing
	id int64

	// customerID references the customer who placed the order
	customerID int64

	// lines are the priced menu items in cart order
	lines []Line

	// total is the sum of line prices
	total kernel.Money

	// status is the current lifecycle state
	status Status

	// chefID is the assigned chef ("" until Preparing)
	chefID string

	// courierID is the assigned courier ("" until OutForDelivery)
	courierID string

	// createdAt is the admission time
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Placed status and computes its total.
//
// Returns ErrEmptyCart when lines is empty.
//
// Example:
//
//	line, _ := order.NewLine(1, "Fries", 2, kernel.MustMoney("3.50"))
//	o, err := order.NewOrder(1, customerID, []order.Line{line}, time.Now())
//	// o.Total() == 7.00, o.Status() == order.Placed
func NewOrder(id, customerID int64, lines []Line, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:    Placed,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.total = kernel.ZeroMoney()
	for _, l := range o.lines {
		o.total = o.total.Add(l.Price())
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. The stored total is trusted; the
// status and staff ids are checked for consistency.
func RestoreOrder(
	id, customerID int64,
	lines []Line,
	total kernel.Money,
	status Status,
	chefID, courierID string,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, lines, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status.hasChef() != (chefID != "") {
		return nil, errs.NewValueIsInvalidErrorWithCause("chef id",
			fmt.Errorf("status %s does not match chef %q", status, chefID))
	}
	if status.hasCourier() != (courierID != "") {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("status %s does not match courier %q", status, courierID))
	}

	o.total = total
	o.status = status
	o.chefID = chefID
	o.courierID = courierID
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) Total() kernel.Money {
	return o.total
}

// TotalQuantity is the number of units over all lines. It drives queue priority.
func (o *Order) TotalQuantity() int {
	n := 0
	for _, l := range o.lines {
		n += l.Quantity()
	}
	return n
}

func (o *Order) Status() Status {
	return o.status
}

// ChefID returns the assigned chef, or "" if none.
func (o *Order) ChefID() string {
	return o.chefID
}

// CourierID returns the assigned courier, or "" if none.
func (o *Order) CourierID() string {
	return o.courierID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartPreparing assigns the order to chefID and moves it from Placed to Preparing.
func (o *Order) StartPreparing(chefID string) error {
	if strings.TrimSpace(chefID) == "" {
		return errs.NewValueIsRequiredError("chef id")
	}
	if err := o.transition(OpStartPreparing); err != nil {
		return err
	}
	o.chefID = chefID
	return nil
}

// MarkReady moves a Preparing order to ReadyForDelivery. chefID must be the chef
// the order is assigned to.
func (o *Order) MarkReady(chefID string) error {
	if o.status == Preparing && o.chefID != chefID {
		return o.mismatch(OpComplete, fmt.Sprintf("assigned to chef %q, not %q", o.chefID, chefID))
	}
	return o.transition(OpComplete)
}

// DispatchForDelivery hands a ReadyForDelivery order to courierID.
func (o *Order) DispatchForDelivery(courierID string) error {
	if strings.TrimSpace(courierID) == "" {
		return errs.NewValueIsRequiredError("courier id")
	}
	if err := o.transition(OpDispatchForDelivery); err != nil {
		return err
	}
	o.courierID = courierID
	return nil
}

// MarkDelivered moves an OutForDelivery order to Delivered. courierID must be the
// courier carrying the order.
func (o *Order) MarkDelivered(courierID string) error {
	if o.status == OutForDelivery && o.courierID != courierID {
		return o.mismatch(OpConfirmDelivery, fmt.Sprintf("carried by courier %q, not %q", o.courierID, courierID))
	}
	return o.transition(OpConfirmDelivery)
}

// Cancel withdraws a Placed order.
func (o *Order) Cancel() error {
	return o.transition(OpCancel)
}

// Clone returns a deep copy safe to hand to callers outside the coordinator.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.lines = o.Lines()
	return &cp
}

func (o *Order) transition(operation string) error {
	next, ok := o.status.next(operation)
	if !ok {
		return NewInvalidStateError(o.id, o.status, operation)
	}
	o.status = next
	return nil
}

func (o *Order) mismatch(operation, reason string) error {
	err := NewInvalidStateError(o.id, o.status, operation)
	err.Reason = reason
	return err
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id", fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	for _, l := range lines {
		if l.quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("line", fmt.Errorf("item %d was not created via NewLine", l.itemID))
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
