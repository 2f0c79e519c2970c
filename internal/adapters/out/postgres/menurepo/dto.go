// Package menurepo maps menu items and their toppings to the menu_items and
// menu_toppings tables.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuItemDTO is one row of menu_items. Cooked and potato types are stored by name
// so the table stays readable when the enums grow.
type MenuItemDTO struct {
	ID         int             `gorm:"primaryKey;autoIncrement:false"`
	Name       string          `gorm:"type:varchar(255);not null"`
	BasePrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CookedType string          `gorm:"type:varchar(32);not null"`
	PotatoType string          `gorm:"type:varchar(32);not null"`
	Available  bool            `gorm:"not null;default:true"`
	Toppings   []ToppingDTO    `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// ToppingDTO is one row of menu_toppings. Position keeps the menu's topping order.
type ToppingDTO struct {
	ID         uint            `gorm:"primaryKey"`
	MenuItemID int             `gorm:"not null;index"`
	Position   int             `gorm:"not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	ExtraCost  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ToppingDTO) TableName() string {
	return "menu_toppings"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	toppings := make([]ToppingDTO, 0, len(item.Toppings()))
	for i, t := range item.Toppings() {
		toppings = append(toppings, ToppingDTO{
			MenuItemID: item.ID(),
			Position:   i,
			Name:       t.Name(),
			ExtraCost:  t.ExtraCost().Decimal(),
		})
	}

	return MenuItemDTO{
		ID:         item.ID(),
		Name:       item.Name(),
		BasePrice:  item.BasePrice().Decimal(),
		CookedType: item.CookedType().String(),
		PotatoType: item.PotatoType().String(),
		Available:  item.IsAvailable(),
		Toppings:   toppings,
	}
}

// toDomain expects Toppings to be loaded in position order.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	cooked, err := menu.ParseCookedType(dto.CookedType)
	if err != nil {
		return nil, err
	}
	potato, err := menu.ParsePotatoType(dto.PotatoType)
	if err != nil {
		return nil, err
	}
	base, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	toppings := make([]menu.Topping, 0, len(dto.Toppings))
	for _, t := range dto.Toppings {
		cost, costErr := kernel.NewMoney(t.ExtraCost)
		if costErr != nil {
			return nil, costErr
		}
		topping, toppingErr := menu.NewTopping(t.Name, cost)
		if toppingErr != nil {
			return nil, toppingErr
		}
		toppings = append(toppings, topping)
	}

	return menu.NewMenuItem(dto.ID, dto.Name, base, cooked, potato, dto.Available, toppings...)
}
