package staff

import (
	"restaurant/internal/pkg/errs"
)

// Roster holds every chef and courier of a restaurant. Staff ids are unique across
// both roles. Roster itself is not safe for concurrent use.
type Roster struct {
	chefs    []*Chef
	couriers []*Courier
	byID     map[string]Member
}

func NewRoster() *Roster {
	return &Roster{byID: make(map[string]Member)}
}

// AddChef registers c. It fails with ErrValueIsRequired on nil and with
// ErrObjectAlreadyExists when any member already uses the id.
func (r *Roster) AddChef(c *Chef) error {
	if c == nil {
		return errs.NewValueIsRequiredError("chef")
	}
	if err := r.register(c); err != nil {
		return err
	}
	r.chefs = append(r.chefs, c)
	return nil
}

// AddCourier registers c under the same rules as AddChef.
func (r *Roster) AddCourier(c *Courier) error {
	if c == nil {
		return errs.NewValueIsRequiredError("courier")
	}
	if err := r.register(c); err != nil {
		return err
	}
	r.couriers = append(r.couriers, c)
	return nil
}

func (r *Roster) register(m Member) error {
	if err := m.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("staff member", err)
	}
	if _, exists := r.byID[m.ID()]; exists {
		return errs.NewObjectAlreadyExistsError("staff", m.ID())
	}
	r.byID[m.ID()] = m
	return nil
}

// Find returns the member with id regardless of role.
func (r *Roster) Find(id string) (Member, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// FindChef returns the chef with id, or false if id is unknown or belongs to a courier.
func (r *Roster) FindChef(id string) (*Chef, bool) {
	c, ok := r.byID[id].(*Chef)
	return c, ok
}

func (r *Roster) FindCourier(id string) (*Courier, bool) {
	c, ok := r.byID[id].(*Courier)
	return c, ok
}

func (r *Roster) Chefs() []*Chef {
	out := make([]*Chef, len(r.chefs))
	copy(out, r.chefs)
	return out
}

func (r *Roster) Couriers() []*Courier {
	out := make([]*Courier, len(r.couriers))
	copy(out, r.couriers)
	return out
}

// Headcount is a point-in-time count of the roster by role and availability.
type Headcount struct {
	Chefs             int
	AvailableChefs    int
	Couriers          int
	AvailableCouriers int
}

func (r *Roster) Headcount() Headcount {
	h := Headcount{Chefs: len(r.chefs), Couriers: len(r.couriers)}
	for _, c := range r.chefs {
		if c.IsAvailable() {
			h.AvailableChefs++
		}
	}
	for _, c := range r.couriers {
		if c.IsAvailable() {
			h.AvailableCouriers++
		}
	}
	return h
}
