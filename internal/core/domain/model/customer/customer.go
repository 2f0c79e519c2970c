package customer

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a registered diner. Identity is a positive numeric id.
type Customer struct {
	id      int64
	contact kernel.Contact
	cart    *Cart
	guard   guard.ConstructorGuard
}

// NewCustomer creates a customer with an empty cart.
func NewCustomer(id int64, contact kernel.Contact) (*Customer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer id", fmt.Errorf("%d is not greater than 0", id))
	}
	if err := contact.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("contact", err)
	}

	return &Customer{
		id:      id,
		contact: contact,
		cart:    NewCart(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() int64 {
	return c.id
}

func (c *Customer) Contact() kernel.Contact {
	return c.contact
}

func (c *Customer) Name() string {
	return c.contact.Name()
}

// Cart returns the customer's own cart. The pointer is stable for the customer's lifetime.
func (c *Customer) Cart() *Cart {
	return c.cart
}
