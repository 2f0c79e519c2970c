package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance with middleware, the health probe, swagger UI
// and every API route registered against s.
func NewEcho(s *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(logger))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterRoutes(e, s)
	return e, nil
}

// RegisterRoutes mounts the API paths described in openapi.yaml.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.POST("/api/v1/restaurant/open", s.OpenRestaurant)
	e.POST("/api/v1/restaurant/close", s.CloseRestaurant)
	e.GET("/api/v1/restaurant/status", s.GetStatus)
	e.GET("/api/v1/restaurant/stats", s.GetStats)

	e.GET("/api/v1/menu", s.GetMenu)
	e.POST("/api/v1/menu", s.AddMenuItem)
	e.DELETE("/api/v1/menu/:itemId", s.RemoveMenuItem)
	e.PUT("/api/v1/menu/:itemId/availability", s.SetMenuItemAvailability)

	e.POST("/api/v1/staff/chefs", s.AddChef)
	e.POST("/api/v1/staff/couriers", s.AddCourier)
	e.GET("/api/v1/staff/:staffId", s.GetStaffMember)

	e.POST("/api/v1/customers", s.RegisterCustomer)
	e.GET("/api/v1/customers/:customerId", s.GetCustomer)
	e.POST("/api/v1/customers/:customerId/cart", s.AddToCart)
	e.DELETE("/api/v1/customers/:customerId/cart/:itemId", s.RemoveFromCart)
	e.POST("/api/v1/customers/:customerId/orders", s.PlaceOrder)
	e.GET("/api/v1/customers/:customerId/orders/history", s.GetOrderHistory)

	e.GET("/api/v1/kitchen/queue", s.GetKitchenQueue)
	e.POST("/api/v1/kitchen/dispatch", s.DispatchKitchen)

	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v1/orders/:orderId", s.GetOrder)
	e.POST("/api/v1/orders/:orderId/complete", s.CompleteOrder)
	e.POST("/api/v1/orders/:orderId/dispatch", s.DispatchDelivery)
	e.POST("/api/v1/orders/:orderId/deliver", s.ConfirmDelivery)
	e.POST("/api/v1/orders/:orderId/cancel", s.CancelOrder)

	e.GET("/api/v1/reports/popular-items", s.GetPopularItems)
	e.GET("/api/v1/events/recent", s.GetRecentEvents)
}
