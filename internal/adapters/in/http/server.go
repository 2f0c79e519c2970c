package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/restaurant"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	PlaceOrder     commands.PlaceOrderCommandHandler
	KitchenQueue   commands.ProcessKitchenQueueCommandHandler
	CompleteOrder  commands.CompleteOrderCommandHandler
	Dispatch       commands.DispatchDeliveryCommandHandler
	ConfirmDeliver commands.ConfirmDeliveryCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler

	OrderHistory queries.GetOrderHistoryQueryHandler
	PopularItems queries.GetPopularItemsQueryHandler
}

// Server serves the REST API. Order lifecycle changes go through the command
// handlers so events and archiving happen; registration and reads call the
// coordinator directly.
type Server struct {
	restaurant *restaurant.Restaurant
	handlers   Handlers
	events     RecentEvents
}

func NewServer(r *restaurant.Restaurant, handlers Handlers, events RecentEvents) *Server {
	return &Server{
		restaurant: r,
		handlers:   handlers,
		events:     events,
	}
}

// OpenRestaurant handles POST /api/v1/restaurant/open.
func (s *Server) OpenRestaurant(c echo.Context) error {
	if err := s.restaurant.Open(); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CloseRestaurant handles POST /api/v1/restaurant/close and returns the day's report.
func (s *Server) CloseRestaurant(c echo.Context) error {
	report, err := s.restaurant.Close()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toReport(report))
}

func (s *Server) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, toStatus(s.restaurant.Status()))
}

func (s *Server) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, toStats(s.restaurant.Stats()))
}

func (s *Server) GetMenu(c echo.Context) error {
	items := s.restaurant.Menu()
	response := make([]MenuItem, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItem(item))
	}
	return c.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu.
func (s *Server) AddMenuItem(c echo.Context) error {
	var body NewMenuItem
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	item, err := body.toDomain()
	if err != nil {
		return respondError(c, err)
	}
	if err = s.restaurant.AddMenuItem(item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toMenuItem(item))
}

func (s *Server) RemoveMenuItem(c echo.Context) error {
	var itemID int
	if err := pathParam(c, "itemId", &itemID); err != nil {
		return err
	}
	if !s.restaurant.RemoveMenuItem(itemID) {
		return respondError(c, errs.NewObjectNotFoundError("menu item", itemID))
	}
	return c.NoContent(http.StatusNoContent)
}

// SetMenuItemAvailability handles PUT /api/v1/menu/{itemId}/availability.
func (s *Server) SetMenuItemAvailability(c echo.Context) error {
	var itemID int
	if err := pathParam(c, "itemId", &itemID); err != nil {
		return err
	}
	var body Availability
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	item, err := s.restaurant.SetMenuItemAvailability(itemID, body.Available)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toMenuItem(item))
}

// AddChef handles POST /api/v1/staff/chefs.
func (s *Server) AddChef(c echo.Context) error {
	var body NewStaffMember
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	contact, err := kernel.NewContact(body.Name, body.Address, body.Phone)
	if err != nil {
		return respondError(c, err)
	}
	chef, err := staff.NewChef(body.ID, contact)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.restaurant.AddChef(chef); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toStaffMember(chef))
}

// AddCourier handles POST /api/v1/staff/couriers.
func (s *Server) AddCourier(c echo.Context) error {
	var body NewStaffMember
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	contact, err := kernel.NewContact(body.Name, body.Address, body.Phone)
	if err != nil {
		return respondError(c, err)
	}
	courier, err := staff.NewCourier(body.ID, contact)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.restaurant.AddDeliveryStaff(courier); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toStaffMember(courier))
}

func (s *Server) GetStaffMember(c echo.Context) error {
	var staffID string
	if err := pathParam(c, "staffId", &staffID); err != nil {
		return err
	}
	member, ok := s.restaurant.FindStaffByID(staffID)
	if !ok {
		return respondError(c, errs.NewObjectNotFoundError("staff member", staffID))
	}
	return c.JSON(http.StatusOK, toStaffMember(member))
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(c echo.Context) error {
	var body NewCustomer
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	contact, err := kernel.NewContact(body.Name, body.Address, body.Phone)
	if err != nil {
		return respondError(c, err)
	}
	cust, err := customer.NewCustomer(body.ID, contact)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.restaurant.RegisterCustomer(cust); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toCustomer(cust))
}

func (s *Server) GetCustomer(c echo.Context) error {
	var customerID int64
	if err := pathParam(c, "customerId", &customerID); err != nil {
		return err
	}
	cust, ok := s.restaurant.FindCustomerByID(customerID)
	if !ok {
		return respondError(c, errs.NewObjectNotFoundError("customer", customerID))
	}
	return c.JSON(http.StatusOK, toCustomer(cust))
}

// AddToCart handles POST /api/v1/customers/{customerId}/cart.
func (s *Server) AddToCart(c echo.Context) error {
	var customerID int64
	if err := pathParam(c, "customerId", &customerID); err != nil {
		return err
	}
	var body CartItem
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	if err := s.restaurant.AddToCart(customerID, body.ItemID, body.Quantity); err != nil {
		return respondError(c, err)
	}
	return s.GetCustomer(c)
}

func (s *Server) RemoveFromCart(c echo.Context) error {
	var customerID int64
	if err := pathParam(c, "customerId", &customerID); err != nil {
		return err
	}
	var itemID int
	if err := pathParam(c, "itemId", &itemID); err != nil {
		return err
	}

	removed, err := s.restaurant.RemoveFromCart(customerID, itemID)
	if err != nil {
		return respondError(c, err)
	}
	if !removed {
		return respondError(c, errs.NewObjectNotFoundError("cart item", itemID))
	}
	return c.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/customers/{customerId}/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var customerID int64
	if err := pathParam(c, "customerId", &customerID); err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID)
	if err != nil {
		return respondError(c, err)
	}
	placed, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toOrder(placed))
}

// GetOrderHistory handles GET /api/v1/customers/{customerId}/orders/history.
func (s *Server) GetOrderHistory(c echo.Context) error {
	var customerID int64
	if err := pathParam(c, "customerId", &customerID); err != nil {
		return err
	}
	var limit int
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid limit")
	}

	query, err := queries.NewGetOrderHistoryQuery(customerID, limit)
	if err != nil {
		return respondError(c, err)
	}
	history, err := s.handlers.OrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toArchivedOrders(history))
}

func (s *Server) GetKitchenQueue(c echo.Context) error {
	return c.JSON(http.StatusOK, toOrders(s.restaurant.QueuedOrders()))
}

// DispatchKitchen handles POST /api/v1/kitchen/dispatch.
func (s *Server) DispatchKitchen(c echo.Context) error {
	started, err := s.handlers.KitchenQueue.Handle(c.Request().Context(), commands.NewProcessKitchenQueueCommand())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(started))
}

// GetOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) GetOrders(c echo.Context) error {
	status := order.Unknown
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return respondError(c, err)
		}
		status = parsed
	}
	return c.JSON(http.StatusOK, toOrders(s.restaurant.Orders(status)))
}

func (s *Server) GetOrder(c echo.Context) error {
	var orderID int64
	if err := pathParam(c, "orderId", &orderID); err != nil {
		return err
	}
	o, ok := s.restaurant.FindOrderByID(orderID)
	if !ok {
		return respondError(c, order.NewNotFoundError(orderID))
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	var orderID int64
	if err := pathParam(c, "orderId", &orderID); err != nil {
		return err
	}
	var body ChefAssignment
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, body.ChefID)
	if err != nil {
		return respondError(c, err)
	}
	o, err := s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// DispatchDelivery handles POST /api/v1/orders/{orderId}/dispatch. Without a
// courierId the first free courier takes the order.
func (s *Server) DispatchDelivery(c echo.Context) error {
	var orderID int64
	if err := pathParam(c, "orderId", &orderID); err != nil {
		return err
	}
	var body CourierAssignment
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&body); err != nil {
			return writeError(c, http.StatusBadRequest, "invalid request body")
		}
	}

	cmd, err := commands.NewDispatchDeliveryCommand(orderID, body.CourierID)
	if err != nil {
		return respondError(c, err)
	}
	o, err := s.handlers.Dispatch.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// ConfirmDelivery handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	var orderID int64
	if err := pathParam(c, "orderId", &orderID); err != nil {
		return err
	}
	var body CourierAssignment
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, body.CourierID)
	if err != nil {
		return respondError(c, err)
	}
	o, err := s.handlers.ConfirmDeliver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

func (s *Server) CancelOrder(c echo.Context) error {
	var orderID int64
	if err := pathParam(c, "orderId", &orderID); err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(c, err)
	}
	o, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// GetPopularItems handles GET /api/v1/reports/popular-items.
func (s *Server) GetPopularItems(c echo.Context) error {
	var top int
	if err := runtime.BindQueryParameter("form", true, false, "top", c.QueryParams(), &top); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid top")
	}

	query, err := queries.NewGetPopularItemsQuery(top)
	if err != nil {
		return respondError(c, err)
	}
	items, err := s.handlers.PopularItems.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toPopularItems(items))
}

func (s *Server) GetRecentEvents(c echo.Context) error {
	if s.events == nil {
		return c.JSON(http.StatusOK, []Event{})
	}
	return c.JSON(http.StatusOK, toEvents(s.events.Recent()))
}

// pathParam binds a required path parameter. The returned error is an
// *echo.HTTPError whose message echo renders as an Error body.
func pathParam(c echo.Context, name string, dst any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), dst,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid " + name})
	}
	return nil
}
