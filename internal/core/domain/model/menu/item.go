package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
	ErrToppingIsNotConstructed  = errors.New("Topping must be created via NewTopping constructor")
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
)

// Topping is an add-on ingredient that raises the unit price of a dish.
type Topping struct {
	name      string
	extraCost kernel.Money
	guard     guard.ConstructorGuard
}

func NewTopping(name string, extraCost kernel.Money) (Topping, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Topping{}, ErrNameIsRequired
	}
	return Topping{name: name, extraCost: extraCost, guard: guard.NewConstructorGuard()}, nil
}

func (t Topping) Validate() error {
	return t.guard.Validate(ErrToppingIsNotConstructed)
}

func (t Topping) Name() string {
	return t.name
}

func (t Topping) ExtraCost() kernel.Money {
	return t.extraCost
}

// MenuItem is a dish on the menu.
//
// Invariants:
//   - id is positive
//   - name is not empty
//   - price (base plus toppings) is computed once and never changes
//
// Availability is mutated only by the owning Catalog.
type MenuItem struct {
	id         int
	name       string
	basePrice  kernel.Money
	price      kernel.Money
	cookedType CookedType
	potatoType PotatoType
	toppings   []Topping
	available  bool
	guard      guard.ConstructorGuard
}

// NewMenuItem validates every attribute and fixes the unit price.
//
// Example:
//
//	cheese, _ := menu.NewTopping("Cheddar", kernel.MustMoney("0.75"))
//	fries, err := menu.NewMenuItem(1, "Loaded Fries", kernel.MustMoney("4.25"),
//	    menu.Fried, menu.Russet, true, cheese)
//	// fries.Price() == 5.00
func NewMenuItem(
	id int,
	name string,
	basePrice kernel.Money,
	cookedType CookedType,
	potatoType PotatoType,
	available bool,
	toppings ...Topping,
) (*MenuItem, error) {
	item := &MenuItem{
		basePrice: basePrice,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCookedType(cookedType),
		item.setPotatoType(potatoType),
		item.setToppings(toppings),
	); err != nil {
		return nil, err
	}

	item.price = basePrice
	for _, t := range item.toppings {
		item.price = item.price.Add(t.ExtraCost())
	}

	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() int {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

// BasePrice is the price without toppings.
func (m *MenuItem) BasePrice() kernel.Money {
	return m.basePrice
}

// Price is the unit price charged per ordered quantity.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) CookedType() CookedType {
	return m.cookedType
}

func (m *MenuItem) PotatoType() PotatoType {
	return m.potatoType
}

func (m *MenuItem) Toppings() []Topping {
	out := make([]Topping, len(m.toppings))
	copy(out, m.toppings)
	return out
}

func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// Clone returns an independent copy for read-only callers.
func (m *MenuItem) Clone() *MenuItem {
	if m == nil {
		return nil
	}
	cp := *m
	cp.toppings = m.Toppings()
	return &cp
}

func (m *MenuItem) String() string {
	return fmt.Sprintf("MenuItem{id=%d, name=%q (%s, %s) - $%s}", m.id, m.name, m.cookedType, m.potatoType, m.price)
}

func (m *MenuItem) setAvailability(available bool) {
	m.available = available
}

func (m *MenuItem) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", fmt.Errorf("%d is not greater than 0", id))
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setCookedType(c CookedType) error {
	if err := c.Validate(); err != nil {
		return err
	}
	m.cookedType = c
	return nil
}

func (m *MenuItem) setPotatoType(p PotatoType) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.potatoType = p
	return nil
}

func (m *MenuItem) setToppings(toppings []Topping) error {
	for _, t := range toppings {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	m.toppings = make([]Topping, len(toppings))
	copy(m.toppings, toppings)
	return nil
}
