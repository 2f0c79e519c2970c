package queries

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetPopularItemsQueryIsNotConstructed = errors.New(
	"GetPopularItemsQuery must be created via NewGetPopularItemsQuery constructor",
)

// GetPopularItemsQuery ranks items by quantity across every delivered order in the
// archive. Unlike the daily report it is not reset when the restaurant closes.
type GetPopularItemsQuery struct {
	top int

	guard guard.ConstructorGuard
}

const (
	DefaultPopularItems = 10
	MaxPopularItems     = 50
)

// NewGetPopularItemsQuery builds the query. A top of 0 means DefaultPopularItems.
func NewGetPopularItemsQuery(top int) (GetPopularItemsQuery, error) {
	if top == 0 {
		top = DefaultPopularItems
	}
	if top < 1 || top > MaxPopularItems {
		return GetPopularItemsQuery{}, errs.NewValueIsOutOfRangeError("top", top, 1, MaxPopularItems)
	}
	return GetPopularItemsQuery{top: top, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPopularItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetPopularItemsQueryIsNotConstructed)
}

func (q GetPopularItemsQuery) Top() int {
	return q.top
}

// GetPopularItemsQueryResponse is one ranked item.
type GetPopularItemsQueryResponse struct {
	ItemName string
	Quantity int
	Orders   int
}
