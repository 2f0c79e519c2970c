// Package stats accumulates throughput, revenue and item popularity as orders move
// through the kitchen and delivery pipeline.
package stats

import (
	"cmp"
	"maps"
	"slices"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// Statistics is mutated only by the restaurant coordinator and is not safe for
// concurrent use on its own.
type Statistics struct {
	ordersProcessed int
	ordersDelivered int
	revenue         kernel.Money
	popularItems    map[string]int
}

func New() *Statistics {
	return &Statistics{revenue: kernel.ZeroMoney(), popularItems: make(map[string]int)}
}

// RecordCompleted counts an order the kitchen finished: one more processed order,
// its total added to revenue and each line's quantity added to item popularity.
func (s *Statistics) RecordCompleted(o *order.Order) {
	s.ordersProcessed++
	s.revenue = s.revenue.Add(o.Total())
	for _, l := range o.Lines() {
		s.popularItems[l.ItemName()] += l.Quantity()
	}
}

func (s *Statistics) RecordDelivered() {
	s.ordersDelivered++
}

// Snapshot is a read-only copy of the counters.
type Snapshot struct {
	TotalOrdersProcessed int
	OrdersDelivered      int
	TotalRevenue         kernel.Money
	PopularItems         map[string]int
}

func (s *Statistics) Snapshot() Snapshot {
	return Snapshot{
		TotalOrdersProcessed: s.ordersProcessed,
		OrdersDelivered:      s.ordersDelivered,
		TotalRevenue:         s.revenue,
		PopularItems:         maps.Clone(s.popularItems),
	}
}

func (s *Statistics) TotalRevenue() kernel.Money {
	return s.revenue
}

func (s *Statistics) TotalOrdersProcessed() int {
	return s.ordersProcessed
}

// ItemCount is one entry of a popularity ranking.
type ItemCount struct {
	Name     string
	Quantity int
}

// TopItems ranks items by quantity sold, highest first, ties by name.
func (s Snapshot) TopItems(n int) []ItemCount {
	ranked := make([]ItemCount, 0, len(s.PopularItems))
	for name, qty := range s.PopularItems {
		ranked = append(ranked, ItemCount{Name: name, Quantity: qty})
	}
	slices.SortFunc(ranked, func(a, b ItemCount) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
