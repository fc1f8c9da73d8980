package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivnsm/hotel-reservation/internal/registry"
)

// CustomerHandler exposes the customer registry over HTTP.
type CustomerHandler struct {
	Customers *registry.CustomerRegistry
}

// NewCustomerHandler constructs a CustomerHandler.  The registry must
// be non-nil.
func NewCustomerHandler(customers *registry.CustomerRegistry) *CustomerHandler {
	if customers == nil {
		panic("nil registry passed to NewCustomerHandler")
	}
	return &CustomerHandler{Customers: customers}
}

// List handles GET /v1/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Customers.List()})
}

// Get handles GET /v1/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	cust, err := h.Customers.Get(c.Param("id"))
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cust)
}

// Create handles POST /v1/customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cust, err := h.Customers.Create(body.Name, body.Email)
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cust)
}

// Update handles PATCH /v1/customers/:id with the same field-map
// semantics as the hotel endpoint.
func (h *CustomerHandler) Update(c echo.Context) error {
	var updates map[string]any
	if err := c.Bind(&updates); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	cust, err := h.Customers.Modify(c.Param("id"), updates)
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete handles DELETE /v1/customers/:id.  Reservations referencing
// the customer are left dangling on purpose.
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.Customers.Delete(c.Param("id")); err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
