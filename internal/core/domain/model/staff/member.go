package staff

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// Role tags the kind of work a member does.
type Role string

const (
	RoleChef     Role = "Chef"
	RoleDelivery Role = "Delivery"
)

var (
	ErrMemberIsNotConstructed = errors.New("staff member must be created via NewChef or NewCourier constructor")
	ErrIDIsRequired           = errs.NewValueIsRequiredError("staff id")
)

// Member is the behaviour shared by every staff role.
type Member interface {
	ID() string
	Contact() kernel.Contact
	Role() Role
	Assign(orderID int64) error
	Release(orderID int64) error
	IsAvailable() bool
	AssignedOrders() []int64
	CompletedOrders() []int64
	Validate() error
}

// profile is embedded by Chef and Courier. Its lists are guarded by mu because
// members are handed out by lookups while the coordinator keeps mutating them.
type profile struct {
	id        string
	contact   kernel.Contact
	mu        sync.RWMutex
	assigned  []int64
	completed []int64
	guard     guard.ConstructorGuard
}

func newProfile(id string, contact kernel.Contact) (*profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDIsRequired
	}
	if err := contact.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("contact", err)
	}
	return &profile{id: id, contact: contact, guard: guard.NewConstructorGuard()}, nil
}

func (p *profile) validate() error {
	if p == nil {
		return ErrMemberIsNotConstructed
	}
	return p.guard.Validate(ErrMemberIsNotConstructed)
}

func (p *profile) ID() string {
	return p.id
}

func (p *profile) Contact() kernel.Contact {
	return p.contact
}

func (p *profile) Name() string {
	return p.contact.Name()
}

// Assign adds orderID to the member's current work. Assigning the same order twice fails.
func (p *profile) Assign(orderID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if slices.Contains(p.assigned, orderID) {
		return errs.NewObjectAlreadyExistsError("assigned order", orderID)
	}
	p.assigned = append(p.assigned, orderID)
	return nil
}

// Release moves orderID from the current work to the completed list.
func (p *profile) Release(orderID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := slices.Index(p.assigned, orderID)
	if i < 0 {
		return errs.NewObjectNotFoundError("assigned order", orderID)
	}
	p.assigned = slices.Delete(p.assigned, i, i+1)
	p.completed = append(p.completed, orderID)
	return nil
}

// IsAvailable is true iff no order is currently assigned.
func (p *profile) IsAvailable() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.assigned) == 0
}

func (p *profile) AssignedOrders() []int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.assigned)
}

func (p *profile) CompletedOrders() []int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.completed)
}
