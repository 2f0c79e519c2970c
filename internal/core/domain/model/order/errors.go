package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Operation names carried by InvalidStateError.
const (
	OpStartPreparing      = "start preparing"
	OpComplete            = "complete"
	OpDispatchForDelivery = "dispatch for delivery"
	OpConfirmDelivery     = "confirm delivery"
	OpCancel              = "cancel"
)

var (
	// ErrEmptyCart is returned when an order would be created from a cart without lines.
	// It also matches errs.ErrValueIsInvalid.
	ErrEmptyCart = errs.NewValueIsInvalidErrorWithCause("cart", errors.New("cart has no lines"))

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderState = errors.New("invalid order state")
)

// NotFoundError reports an order id unknown to the coordinator.
type NotFoundError struct {
	OrderID int64
}

func NewNotFoundError(orderID int64) *NotFoundError {
	return &NotFoundError{OrderID: orderID}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrOrderNotFound, e.OrderID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrOrderNotFound
}

// InvalidStateError reports an operation that the order's current status, or its
// staff assignment, does not allow.
type InvalidStateError struct {
	OrderID   int64
	Status    Status
	Operation string
	Reason    string
}

func NewInvalidStateError(orderID int64, status Status, operation string) *InvalidStateError {
	return &InvalidStateError{OrderID: orderID, Status: status, Operation: operation}
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s order %d in status %s", ErrInvalidOrderState, e.Operation, e.OrderID, e.Status)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidOrderState
}
