package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ivnsm/hotel-reservation/internal/queue"
	"github.com/ivnsm/hotel-reservation/internal/registry"
)

// EventPublisher sends a reservation lifecycle event to the message
// broker.  Failures must be handled inside the publisher; the
// handlers never fail a request over a lost event.
type EventPublisher func(ctx context.Context, event queue.ReservationEvent) error

// ReservationHandler exposes the reservation coordinator over HTTP
// and publishes booked/cancelled events after successful mutations.
type ReservationHandler struct {
	Reservations *registry.ReservationRegistry
	Hotels       *registry.HotelRegistry // optional, enriches events
	Publish      EventPublisher          // optional, nil disables events
}

// NewReservationHandler constructs a ReservationHandler.  hotels and
// publish may be nil.
func NewReservationHandler(reservations *registry.ReservationRegistry, hotels *registry.HotelRegistry, publish EventPublisher) *ReservationHandler {
	if reservations == nil {
		panic("nil registry passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: reservations, Hotels: hotels, Publish: publish}
}

// List handles GET /v1/reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Reservations.List()})
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	res, err := h.Reservations.Get(c.Param("id"))
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// Create handles POST /v1/reservations.  The coordinator performs the
// cross-reference checks and the inventory accounting; this handler
// only translates the outcome and emits the booked event.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body struct {
		CustomerID string `json:"customer_id"`
		HotelID    string `json:"hotel_id"`
		CheckIn    string `json:"check_in"`
		CheckOut   string `json:"check_out"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := h.Reservations.Create(body.CustomerID, body.HotelID, body.CheckIn, body.CheckOut)
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	h.publishEvent(queue.ReservationEvent{
		Type:          queue.EventReservationBooked,
		ReservationID: res.ID,
		CustomerID:    res.CustomerID,
		HotelID:       res.HotelID,
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,
	})
	return c.JSON(http.StatusCreated, res)
}

// Cancel handles DELETE /v1/reservations/:id.  The room release is
// best-effort inside the coordinator; a found reservation is always
// removed.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id := c.Param("id")
	res, err := h.Reservations.Get(id)
	if err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	if err := h.Reservations.Cancel(id); err != nil {
		return c.JSON(errorStatus(err), echo.Map{"error": err.Error()})
	}
	h.publishEvent(queue.ReservationEvent{
		Type:          queue.EventReservationCancelled,
		ReservationID: res.ID,
		HotelID:       res.HotelID,
	})
	return c.NoContent(http.StatusNoContent)
}

// publishEvent fills in the shared event fields and hands the event
// to the publisher on a background goroutine so the response is never
// held up by the broker.
func (h *ReservationHandler) publishEvent(ev queue.ReservationEvent) {
	if h.Publish == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	if h.Hotels != nil {
		if hotel, err := h.Hotels.Get(ev.HotelID); err == nil {
			ev.HotelName = hotel.Name
			ev.RoomsLeft = hotel.RoomsAvailable
		}
	}
	go func() {
		if err := h.Publish(context.Background(), ev); err != nil {
			log.Printf("handler: could not publish %s event: %v", ev.Type, err)
		}
	}()
}
