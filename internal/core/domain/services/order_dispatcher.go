package services

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrChefNotFound is returned when none of the offered chefs is free.
	ErrChefNotFound = errors.New("available chef not found")

	// ErrCourierNotFound is returned when none of the offered couriers is free.
	ErrCourierNotFound = errors.New("available courier not found")
)

// OrderDispatcher moves orders between the kitchen and delivery staff.
//
// Business rules:
//   - A staff member takes a new order only while it holds none
//   - Staff are considered in the order given; the first free one wins
//   - Finishing an order requires the member it was assigned to
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	chef, err := dispatcher.DispatchToKitchen(o, roster.Chefs())
//	if errors.Is(err, services.ErrChefNotFound) {
//	    // every chef is busy; leave the order queued
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// DispatchToKitchen assigns o to the first available chef and starts preparing it.
func (d OrderDispatcher) DispatchToKitchen(o *order.Order, chefs []*staff.Chef) (*staff.Chef, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Placed {
		return nil, order.NewInvalidStateError(o.ID(), o.Status(), order.OpStartPreparing)
	}

	for _, c := range chefs {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsAvailable() {
			continue
		}
		if err := d.assign(c, o, o.StartPreparing); err != nil {
			return nil, err
		}
		return c, nil
	}

	return nil, ErrChefNotFound
}

// FinishCooking marks o ready for delivery and frees chef.
func (d OrderDispatcher) FinishCooking(o *order.Order, chef *staff.Chef) error {
	if err := o.MarkReady(chef.ID()); err != nil {
		return err
	}
	return chef.Release(o.ID())
}

// DispatchToCourier hands o to courier, which must be available.
func (d OrderDispatcher) DispatchToCourier(o *order.Order, courier *staff.Courier) error {
	if err := courier.Validate(); err != nil {
		return err
	}
	if o.Status() != order.ReadyForDelivery {
		return order.NewInvalidStateError(o.ID(), o.Status(), order.OpDispatchForDelivery)
	}
	if !courier.IsAvailable() {
		return errs.NewInvalidStateError("take order "+courier.ID(), "courier is busy")
	}
	return d.assign(courier, o, o.DispatchForDelivery)
}

// DispatchToAnyCourier hands o to the first available courier.
func (d OrderDispatcher) DispatchToAnyCourier(o *order.Order, couriers []*staff.Courier) (*staff.Courier, error) {
	if o.Status() != order.ReadyForDelivery {
		return nil, order.NewInvalidStateError(o.ID(), o.Status(), order.OpDispatchForDelivery)
	}
	for _, c := range couriers {
		if c.Validate() == nil && c.IsAvailable() {
			return c, d.DispatchToCourier(o, c)
		}
	}
	return nil, ErrCourierNotFound
}

// FinishDelivery marks o delivered and frees courier.
func (d OrderDispatcher) FinishDelivery(o *order.Order, courier *staff.Courier) error {
	if err := o.MarkDelivered(courier.ID()); err != nil {
		return err
	}
	return courier.Release(o.ID())
}

// assign runs the order transition before recording the assignment on the member.
// Callers have already checked that the member is free, so Assign cannot collide.
func (d OrderDispatcher) assign(m staff.Member, o *order.Order, transition func(staffID string) error) error {
	if err := transition(m.ID()); err != nil {
		return err
	}
	return m.Assign(o.ID())
}
