package menu

import (
	"errors"
	"fmt"
)

// ErrMenuItemUnavailable is the kind matched by every UnavailableError.
var ErrMenuItemUnavailable = errors.New("menu item unavailable")

// UnavailableError names the item that blocked an order admission.
type UnavailableError struct {
	ItemID   int
	ItemName string
}

func NewUnavailableError(itemID int, itemName string) *UnavailableError {
	return &UnavailableError{ItemID: itemID, ItemName: itemName}
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: '%s' (ID: %d) is currently unavailable", ErrMenuItemUnavailable, e.ItemName, e.ItemID)
}

func (e *UnavailableError) Unwrap() error {
	return ErrMenuItemUnavailable
}
