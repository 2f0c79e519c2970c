package staff

import "restaurant/internal/core/domain/model/kernel"

// Courier delivers orders. Its completed list holds the orders it has handed over.
type Courier struct {
	*profile
}

var _ Member = (*Courier)(nil)

func NewCourier(id string, contact kernel.Contact) (*Courier, error) {
	p, err := newProfile(id, contact)
	if err != nil {
		return nil, err
	}
	return &Courier{profile: p}, nil
}

func (c *Courier) Role() Role {
	return RoleDelivery
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrMemberIsNotConstructed
	}
	return c.profile.validate()
}

func (c *Courier) DeliveredOrders() []int64 {
	return c.CompletedOrders()
}
