package kernel

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")
	ErrContactNameIsRequired   = errs.NewValueIsRequiredError("name")
)

// Contact holds the personal details shared by staff members and customers.
// Only the name is mandatory; address and phone may be empty.
type Contact struct {
	name    string
	address string
	phone   string
	guard   guard.ConstructorGuard
}

func NewContact(name, address, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrContactNameIsRequired
	}

	return Contact{
		name:    name,
		address: strings.TrimSpace(address),
		phone:   strings.TrimSpace(phone),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

func (c Contact) Name() string {
	return c.name
}

func (c Contact) Address() string {
	return c.address
}

func (c Contact) Phone() string {
	return c.phone
}
