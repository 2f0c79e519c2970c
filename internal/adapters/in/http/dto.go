package http

import (
	"time"

	"restaurant/internal/adapters/out/eventlog"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/queue"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/model/stats"
)

// Request and response bodies. Field names follow openapi.yaml; money is a decimal string.

type Topping struct {
	Name      string `json:"name"`
	ExtraCost string `json:"extraCost"`
}

type NewMenuItem struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	BasePrice  string    `json:"basePrice"`
	CookedType string    `json:"cookedType,omitempty"`
	PotatoType string    `json:"potatoType,omitempty"`
	Available  *bool     `json:"available,omitempty"`
	Toppings   []Topping `json:"toppings,omitempty"`
}

type MenuItem struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	BasePrice  string    `json:"basePrice"`
	Price      string    `json:"price"`
	CookedType string    `json:"cookedType"`
	PotatoType string    `json:"potatoType"`
	Available  bool      `json:"available"`
	Toppings   []Topping `json:"toppings"`
}

type Availability struct {
	Available bool `json:"available"`
}

type NewStaffMember struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type StaffMember struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Address         string  `json:"address,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	Role            string  `json:"role"`
	Available       bool    `json:"available"`
	AssignedOrders  []int64 `json:"assignedOrders"`
	CompletedOrders []int64 `json:"completedOrders"`
}

type NewCustomer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type CartLine struct {
	ItemID   int    `json:"itemId"`
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type Customer struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Cart      []CartLine `json:"cart"`
	CartTotal string     `json:"cartTotal"`
}

type CartItem struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

type OrderLine struct {
	ItemID    int    `json:"itemId"`
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

type Order struct {
	ID         int64       `json:"id"`
	CustomerID int64       `json:"customerId"`
	Status     string      `json:"status"`
	Priority   int         `json:"priority"`
	Total      string      `json:"total"`
	ChefID     string      `json:"chefId,omitempty"`
	CourierID  string      `json:"courierId,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	Lines      []OrderLine `json:"lines"`
}

type ChefAssignment struct {
	ChefID string `json:"chefId"`
}

type CourierAssignment struct {
	CourierID string `json:"courierId"`
}

type ArchivedOrder struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	Total     string    `json:"total"`
	ItemCount int       `json:"itemCount"`
	CourierID string    `json:"courierId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Status struct {
	IsOpen                 bool       `json:"isOpen"`
	OpenedAt               *time.Time `json:"openedAt,omitempty"`
	OrdersInQueue          int        `json:"ordersInQueue"`
	TotalChefs             int        `json:"totalChefs"`
	AvailableChefs         int        `json:"availableChefs"`
	TotalDeliveryStaff     int        `json:"totalDeliveryStaff"`
	AvailableDeliveryStaff int        `json:"availableDeliveryStaff"`
	TotalRevenue           string     `json:"totalRevenue"`
	TotalOrdersProcessed   int        `json:"totalOrdersProcessed"`
}

type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Stats struct {
	TotalOrdersProcessed int         `json:"totalOrdersProcessed"`
	OrdersDelivered      int         `json:"ordersDelivered"`
	TotalRevenue         string      `json:"totalRevenue"`
	PopularItems         []ItemCount `json:"popularItems"`
}

type Report struct {
	Restaurant      string      `json:"restaurant"`
	GeneratedAt     time.Time   `json:"generatedAt"`
	OpenedAt        *time.Time  `json:"openedAt,omitempty"`
	OrdersProcessed int         `json:"ordersProcessed"`
	OrdersDelivered int         `json:"ordersDelivered"`
	TotalRevenue    string      `json:"totalRevenue"`
	TopItems        []ItemCount `json:"topItems"`
}

type PopularItem struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Orders   int    `json:"orders"`
}

type Event struct {
	EventID    string    `json:"eventId"`
	OrderID    int64     `json:"orderId"`
	From       string    `json:"from"`
	Status     string    `json:"status"`
	StaffID    string    `json:"staffId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (n NewMenuItem) toDomain() (*menu.MenuItem, error) {
	base, err := kernel.MoneyFromString(n.BasePrice)
	if err != nil {
		return nil, err
	}

	cooked := menu.Fried
	if n.CookedType != "" {
		if cooked, err = menu.ParseCookedType(n.CookedType); err != nil {
			return nil, err
		}
	}
	potato := menu.Russet
	if n.PotatoType != "" {
		if potato, err = menu.ParsePotatoType(n.PotatoType); err != nil {
			return nil, err
		}
	}
	available := true
	if n.Available != nil {
		available = *n.Available
	}

	toppings := make([]menu.Topping, 0, len(n.Toppings))
	for _, t := range n.Toppings {
		cost, costErr := kernel.MoneyFromString(t.ExtraCost)
		if costErr != nil {
			return nil, costErr
		}
		topping, toppingErr := menu.NewTopping(t.Name, cost)
		if toppingErr != nil {
			return nil, toppingErr
		}
		toppings = append(toppings, topping)
	}

	return menu.NewMenuItem(n.ID, n.Name, base, cooked, potato, available, toppings...)
}

func toMenuItem(item *menu.MenuItem) MenuItem {
	toppings := make([]Topping, 0, len(item.Toppings()))
	for _, t := range item.Toppings() {
		toppings = append(toppings, Topping{Name: t.Name(), ExtraCost: t.ExtraCost().String()})
	}
	return MenuItem{
		ID:         item.ID(),
		Name:       item.Name(),
		BasePrice:  item.BasePrice().String(),
		Price:      item.Price().String(),
		CookedType: item.CookedType().String(),
		PotatoType: item.PotatoType().String(),
		Available:  item.IsAvailable(),
		Toppings:   toppings,
	}
}

func toStaffMember(m staff.Member) StaffMember {
	c := m.Contact()
	return StaffMember{
		ID:              m.ID(),
		Name:            c.Name(),
		Address:         c.Address(),
		Phone:           c.Phone(),
		Role:            string(m.Role()),
		Available:       m.IsAvailable(),
		AssignedOrders:  nonNil(m.AssignedOrders()),
		CompletedOrders: nonNil(m.CompletedOrders()),
	}
}

func toCustomer(c *customer.Customer) Customer {
	lines := c.Cart().Lines()
	cart := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		cart = append(cart, CartLine{
			ItemID:   l.Item.ID(),
			ItemName: l.Item.Name(),
			Quantity: l.Quantity,
			Subtotal: l.Subtotal().String(),
		})
	}

	contact := c.Contact()
	return Customer{
		ID:        c.ID(),
		Name:      contact.Name(),
		Address:   contact.Address(),
		Phone:     contact.Phone(),
		Cart:      cart,
		CartTotal: c.Cart().Subtotal().String(),
	}
}

func toOrder(o *order.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLine{
			ItemID:    l.ItemID(),
			ItemName:  l.ItemName(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().String(),
		})
	}
	return Order{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status().String(),
		Priority:   queue.Priority(o),
		Total:      o.Total().String(),
		ChefID:     o.ChefID(),
		CourierID:  o.CourierID(),
		CreatedAt:  o.CreatedAt(),
		Lines:      lines,
	}
}

func toOrders(orders []*order.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toArchivedOrders(history []queries.GetOrderHistoryQueryResponse) []ArchivedOrder {
	out := make([]ArchivedOrder, 0, len(history))
	for _, h := range history {
		out = append(out, ArchivedOrder{
			ID:        h.ID,
			Status:    h.Status,
			Total:     h.Total.String(),
			ItemCount: h.ItemCount,
			CourierID: h.CourierID,
			CreatedAt: h.CreatedAt,
		})
	}
	return out
}

func toStatus(s restaurant.Status) Status {
	return Status{
		IsOpen:                 s.IsOpen,
		OpenedAt:               optionalTime(s.OpenedAt),
		OrdersInQueue:          s.OrdersInQueue,
		TotalChefs:             s.TotalChefs,
		AvailableChefs:         s.AvailableChefs,
		TotalDeliveryStaff:     s.TotalDeliveryStaff,
		AvailableDeliveryStaff: s.AvailableDeliveryStaff,
		TotalRevenue:           s.TotalRevenue.String(),
		TotalOrdersProcessed:   s.TotalOrdersProcessed,
	}
}

func toStats(s stats.Snapshot) Stats {
	return Stats{
		TotalOrdersProcessed: s.TotalOrdersProcessed,
		OrdersDelivered:      s.OrdersDelivered,
		TotalRevenue:         s.TotalRevenue.String(),
		PopularItems:         toItemCounts(s.TopItems(len(s.PopularItems))),
	}
}

func toReport(r restaurant.Report) Report {
	return Report{
		Restaurant:      r.Restaurant,
		GeneratedAt:     r.GeneratedAt,
		OpenedAt:        optionalTime(r.OpenedAt),
		OrdersProcessed: r.OrdersProcessed,
		OrdersDelivered: r.OrdersDelivered,
		TotalRevenue:    r.TotalRevenue.String(),
		TopItems:        toItemCounts(r.TopItems),
	}
}

func toItemCounts(items []stats.ItemCount) []ItemCount {
	out := make([]ItemCount, 0, len(items))
	for _, i := range items {
		out = append(out, ItemCount{Name: i.Name, Quantity: i.Quantity})
	}
	return out
}

func toPopularItems(items []queries.GetPopularItemsQueryResponse) []PopularItem {
	out := make([]PopularItem, 0, len(items))
	for _, i := range items {
		out = append(out, PopularItem{ItemName: i.ItemName, Quantity: i.Quantity, Orders: i.Orders})
	}
	return out
}

func toEvents(events []order.StatusChanged) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, Event{
			EventID:    e.EventID.String(),
			OrderID:    e.OrderID,
			From:       e.From.String(),
			Status:     e.To.String(),
			StaffID:    e.StaffID,
			OccurredAt: e.OccurredAt,
		})
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

// RecentEvents is satisfied by *eventlog.Publisher.
type RecentEvents interface {
	Recent() []order.StatusChanged
}

var _ RecentEvents = (*eventlog.Publisher)(nil)
