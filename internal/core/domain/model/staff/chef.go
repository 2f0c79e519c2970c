package staff

import "restaurant/internal/core/domain/model/kernel"

// Chef prepares orders. Its completed list holds the orders it has cooked.
type Chef struct {
	*profile
}

var _ Member = (*Chef)(nil)

func NewChef(id string, contact kernel.Contact) (*Chef, error) {
	p, err := newProfile(id, contact)
	if err != nil {
		return nil, err
	}
	return &Chef{profile: p}, nil
}

func (c *Chef) Role() Role {
	return RoleChef
}

func (c *Chef) Validate() error {
	if c == nil {
		return ErrMemberIsNotConstructed
	}
	return c.profile.validate()
}

// PreparedOrders is an alias of CompletedOrders that reads better at call sites.
func (c *Chef) PreparedOrders() []int64 {
	return c.CompletedOrders()
}
