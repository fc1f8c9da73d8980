package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivnsm/hotel-reservation/internal/registry"
)

// HotelHandler exposes the hotel registry over HTTP.  Inventory
// counters are never mutated directly through this surface; rooms
// move only through the reservation endpoints (rooms_available stays
// editable via PATCH for operator corrections, same as the console).
type HotelHandler struct {
	Hotels *registry.HotelRegistry
}

// NewHotelHandler constructs a HotelHandler.  The registry must be
// non-nil.
func NewHotelHandler(hotels *registry.HotelRegistry) *HotelHandler {
	if hotels == nil {
		panic("nil registry passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels}
}

// List handles GET /v1/hotels.
func (h *HotelHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Hotels.List()})
}

// Get handles GET /v1/hotels/:id.
func (h *HotelHandler) Get(c echo.Context) error {
	hotel, err := h.Hotels.Get(c.Param("id"))
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, hotel)
}

// Create handles POST /v1/hotels.
func (h *HotelHandler) Create(c echo.Context) error {
	var body struct {
		Name       string `json:"name"`
		Address    string `json:"address"`
		TotalRooms int    `json:"total_rooms"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	hotel, err := h.Hotels.Create(body.Name, body.Address, body.TotalRooms)
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, hotel)
}

// Update handles PATCH /v1/hotels/:id.  The body is a flat JSON
// object forwarded as the field map; unrecognized fields are ignored
// with a logged warning rather than rejected.
func (h *HotelHandler) Update(c echo.Context) error {
	var updates map[string]any
	if err := c.Bind(&updates); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	hotel, err := h.Hotels.Modify(c.Param("id"), updates)
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, hotel)
}

// Delete handles DELETE /v1/hotels/:id.  Reservations referencing the
// hotel are not cancelled; see the registry documentation.
func (h *HotelHandler) Delete(c echo.Context) error {
	if err := h.Hotels.Delete(c.Param("id")); err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
