// Package orderrepo archives orders that reached a final status. An order is stored
// in the orders table and its lines in order_lines.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is one archived order. Staff ids are empty strings when the order never
// reached the step that assigns them.
type OrderDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement:false"`
	CustomerID int64           `gorm:"not null;index"`
	Status     int             `gorm:"not null;index"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ChefID     string          `gorm:"type:varchar(64)"`
	CourierID  string          `gorm:"type:varchar(64)"`
	CreatedAt  time.Time       `gorm:"not null"`
	Lines      []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO keeps the item name and unit price the order was placed with, so the
// archive survives later menu changes.
type OrderLineDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   int64           `gorm:"not null;index"`
	Position  int             `gorm:"not null"`
	ItemID    int             `gorm:"not null"`
	ItemName  string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   o.ID(),
			Position:  i,
			ItemID:    l.ItemID(),
			ItemName:  l.ItemName(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Status:     int(o.Status()),
		Total:      o.Total().Decimal(),
		ChefID:     o.ChefID(),
		CourierID:  o.CourierID(),
		CreatedAt:  o.CreatedAt(),
		Lines:      lines,
	}
}

// toDomain rebuilds the order with RestoreOrder. Lines must be loaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, err := kernel.NewMoney(l.UnitPrice)
		if err != nil {
			return nil, err
		}
		line, err := order.NewLine(l.ItemID, l.ItemName, l.Quantity, price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		lines,
		total,
		order.Status(dto.Status),
		dto.ChefID,
		dto.CourierID,
		dto.CreatedAt.UTC(),
	)
}
