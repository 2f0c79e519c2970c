package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// Line is a menu item captured at admission time. The unit price is copied from the
// menu so later menu changes never alter an admitted order.
type Line struct {
	itemID    int
	itemName  string
	quantity  int
	unitPrice kernel.Money
	price     kernel.Money
}

func NewLine(itemID int, itemName string, quantity int, unitPrice kernel.Money) (Line, error) {
	var errList []error
	if itemID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", itemID)))
	}
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item name"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return Line{}, err
	}

	return Line{
		itemID:    itemID,
		itemName:  itemName,
		quantity:  quantity,
		unitPrice: unitPrice,
		price:     unitPrice.Times(quantity),
	}, nil
}

func (l Line) ItemID() int {
	return l.itemID
}

func (l Line) ItemName() string {
	return l.itemName
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Price is unit price times quantity.
func (l Line) Price() kernel.Money {
	return l.price
}
