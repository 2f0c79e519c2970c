package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Preparing ──> ReadyForDelivery ──> OutForDelivery ──> Delivered
//	  │
//	  └──> Cancelled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Placed is the status of an admitted order waiting in the kitchen queue.
	Placed

	// Preparing means a chef is cooking the order.
	Preparing

	// ReadyForDelivery means the kitchen is done and the order waits for a courier.
	ReadyForDelivery

	// OutForDelivery means a courier has picked the order up.
	OutForDelivery

	// Delivered is final.
	Delivered

	// Cancelled is final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Placed:           "Placed",
		Preparing:        "Preparing",
		ReadyForDelivery: "ReadyForDelivery",
		OutForDelivery:   "OutForDelivery",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:           "Placed",
		Preparing:        "Preparing",
		ReadyForDelivery: "ReadyForDelivery",
		OutForDelivery:   "OutForDelivery",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

// Validate checks that s is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(str string) (Status, error) {
	for s, name := range getValidStatusStrings() {
		if name == str {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", str))
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// next returns the status reached by operation, or false if s forbids it.
func (s Status) next(operation string) (Status, bool) {
	switch {
	case operation == OpStartPreparing && s == Placed:
		return Preparing, true
	case operation == OpComplete && s == Preparing:
		return ReadyForDelivery, true
	case operation == OpDispatchForDelivery && s == ReadyForDelivery:
		return OutForDelivery, true
	case operation == OpConfirmDelivery && s == OutForDelivery:
		return Delivered, true
	case operation == OpCancel && s == Placed:
		return Cancelled, true
	default:
		return Unknown, false
	}
}

// hasChef reports whether an order in status s must carry a chef id.
func (s Status) hasChef() bool {
	return s != Placed && s != Cancelled
}

// hasCourier reports whether an order in status s must carry a courier id.
func (s Status) hasCourier() bool {
	return s == OutForDelivery || s == Delivered
}
