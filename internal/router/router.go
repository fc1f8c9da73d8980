package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/ivnsm/hotel-reservation/internal/handler"
)

// RegisterRoutes registers the routes that exist independently of the
// registries.  Currently that is only the health check used by load
// balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the entity endpoints under /v1.  The cache
// middleware is applied to the read endpoints only; mutating routes
// must always reach the registries.  Pass nil to disable caching.
func RegisterAPI(e *echo.Echo, hotels *handler.HotelHandler, customers *handler.CustomerHandler, reservations *handler.ReservationHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")

	read := []echo.MiddlewareFunc{}
	if cache != nil {
		read = append(read, cache)
	}

	// Hotels
	g.GET("/hotels", hotels.List, read...)
	g.POST("/hotels", hotels.Create)
	g.GET("/hotels/:id", hotels.Get, read...)
	g.PATCH("/hotels/:id", hotels.Update)
	g.DELETE("/hotels/:id", hotels.Delete)

	// Customers
	g.GET("/customers", customers.List, read...)
	g.POST("/customers", customers.Create)
	g.GET("/customers/:id", customers.Get, read...)
	g.PATCH("/customers/:id", customers.Update)
	g.DELETE("/customers/:id", customers.Delete)

	// Reservations: create books a room, delete cancels and frees it.
	g.GET("/reservations", reservations.List, read...)
	g.POST("/reservations", reservations.Create)
	g.GET("/reservations/:id", reservations.Get, read...)
	g.DELETE("/reservations/:id", reservations.Cancel)
}
