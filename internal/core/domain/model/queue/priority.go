package queue

import "restaurant/internal/core/domain/model/order"

const (
	HighestPriority = 1
	LowestPriority  = 5
)

// Priority ranks an order by its total quantity: every two units drop it one level.
//
//	1-2 units -> 1, 3-4 -> 2, 5-6 -> 3, 7-8 -> 4, more -> 5
func Priority(o *order.Order) int {
	q := o.TotalQuantity()
	if q <= 0 {
		return HighestPriority
	}
	return min((q+1)/2, LowestPriority)
}
