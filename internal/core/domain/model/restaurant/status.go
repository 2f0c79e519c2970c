package restaurant

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stats"
)

// Status is a read-only snapshot of the restaurant's operating state.
type Status struct {
	IsOpen                 bool
	OpenedAt               time.Time
	OrdersInQueue          int
	TotalChefs             int
	AvailableChefs         int
	TotalDeliveryStaff     int
	AvailableDeliveryStaff int
	TotalRevenue           kernel.Money
	TotalOrdersProcessed   int
}

// Report summarizes a trading day.
type Report struct {
	Restaurant      string
	GeneratedAt     time.Time
	OpenedAt        time.Time
	OrdersProcessed int
	OrdersDelivered int
	TotalRevenue    kernel.Money
	TopItems        []stats.ItemCount
}

const reportTopItems = 3

func (r *Restaurant) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.roster.Headcount()
	return Status{
		IsOpen:                 r.isOpen,
		OpenedAt:               r.openedAt,
		OrdersInQueue:          r.queue.Len(),
		TotalChefs:             h.Chefs,
		AvailableChefs:         h.AvailableChefs,
		TotalDeliveryStaff:     h.Couriers,
		AvailableDeliveryStaff: h.AvailableCouriers,
		TotalRevenue:           r.stats.TotalRevenue(),
		TotalOrdersProcessed:   r.stats.TotalOrdersProcessed(),
	}
}

func (r *Restaurant) Stats() stats.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.Snapshot()
}

// Report builds the daily report without closing the restaurant.
func (r *Restaurant) Report() Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.report()
}

func (r *Restaurant) report() Report {
	snap := r.stats.Snapshot()
	return Report{
		Restaurant:      r.name,
		GeneratedAt:     r.now(),
		OpenedAt:        r.openedAt,
		OrdersProcessed: snap.TotalOrdersProcessed,
		OrdersDelivered: snap.OrdersDelivered,
		TotalRevenue:    snap.TotalRevenue,
		TopItems:        snap.TopItems(reportTopItems),
	}
}
