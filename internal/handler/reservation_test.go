package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ivnsm/hotel-reservation/internal/model"
	"github.com/ivnsm/hotel-reservation/internal/queue"
	"github.com/ivnsm/hotel-reservation/internal/registry"
)

type env struct {
	e            *echo.Echo
	hotels       *registry.HotelRegistry
	customers    *registry.CustomerRegistry
	reservations *registry.ReservationRegistry
	events       chan queue.ReservationEvent
	handler      *ReservationHandler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	hotels := registry.NewHotelRegistry(filepath.Join(dir, "hotels.json"))
	customers := registry.NewCustomerRegistry(filepath.Join(dir, "customers.json"))
	reservations := registry.NewReservationRegistry(filepath.Join(dir, "reservations.json"), hotels, customers)
	events := make(chan queue.ReservationEvent, 4)
	publish := func(ctx context.Context, ev queue.ReservationEvent) error {
		events <- ev
		return nil
	}
	return &env{
		e:            echo.New(),
		hotels:       hotels,
		customers:    customers,
		reservations: reservations,
		events:       events,
		handler:      NewReservationHandler(reservations, hotels, publish),
	}
}

func (v *env) request(t *testing.T, method, target, body string, h echo.HandlerFunc, pathParam ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := v.e.NewContext(req, rec)
	if len(pathParam) == 2 {
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func (v *env) waitEvent(t *testing.T) queue.ReservationEvent {
	t.Helper()
	select {
	case ev := <-v.events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event published")
		return queue.ReservationEvent{}
	}
}

func TestCreateReservationEndpoint(t *testing.T) {
	v := newEnv(t)
	h, _ := v.hotels.Create("Grand Palace", "100 Main Street", 10)
	c, _ := v.customers.Create("Alice", "alice@example.com")

	body := `{"customer_id":"` + c.ID + `","hotel_id":"` + h.ID + `","check_in":"2026-07-01","check_out":"2026-07-05"}`
	rec := v.request(t, http.MethodPost, "/v1/reservations", body, v.handler.Create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res model.Reservation
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.HotelID != h.ID {
		t.Fatalf("response reservation = %+v", res)
	}

	ev := v.waitEvent(t)
	if ev.Type != queue.EventReservationBooked || ev.ReservationID != res.ID {
		t.Fatalf("event = %+v", ev)
	}
	if ev.HotelName != "Grand Palace" || ev.RoomsLeft != 9 {
		t.Fatalf("event not enriched from hotel registry: %+v", ev)
	}
}

func TestCreateReservationEndpointConflict(t *testing.T) {
	v := newEnv(t)
	h, _ := v.hotels.Create("Tiny Inn", "somewhere", 1)
	c, _ := v.customers.Create("Alice", "alice@example.com")

	body := `{"customer_id":"` + c.ID + `","hotel_id":"` + h.ID + `","check_in":"2026-07-01","check_out":"2026-07-05"}`
	if rec := v.request(t, http.MethodPost, "/v1/reservations", body, v.handler.Create); rec.Code != http.StatusCreated {
		t.Fatalf("first booking status = %d", rec.Code)
	}
	v.waitEvent(t)

	rec := v.request(t, http.MethodPost, "/v1/reservations", body, v.handler.Create)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	select {
	case ev := <-v.events:
		t.Fatalf("failed booking published event %+v", ev)
	default:
	}
}

func TestCreateReservationEndpointValidation(t *testing.T) {
	v := newEnv(t)
	h, _ := v.hotels.Create("Grand Palace", "100 Main Street", 10)
	c, _ := v.customers.Create("Alice", "alice@example.com")

	body := `{"customer_id":"` + c.ID + `","hotel_id":"` + h.ID + `","check_in":"2026-07-05","check_out":"2026-07-01"}`
	rec := v.request(t, http.MethodPost, "/v1/reservations", body, v.handler.Create)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got, _ := v.hotels.Get(h.ID)
	if got.RoomsAvailable != 10 {
		t.Fatalf("inventory leaked through the API: %d", got.RoomsAvailable)
	}
}

func TestCreateReservationEndpointUnknownCustomer(t *testing.T) {
	v := newEnv(t)
	h, _ := v.hotels.Create("Grand Palace", "100 Main Street", 10)

	body := `{"customer_id":"ghost","hotel_id":"` + h.ID + `","check_in":"2026-07-01","check_out":"2026-07-05"}`
	rec := v.request(t, http.MethodPost, "/v1/reservations", body, v.handler.Create)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCancelReservationEndpoint(t *testing.T) {
	v := newEnv(t)
	h, _ := v.hotels.Create("Grand Palace", "100 Main Street", 10)
	c, _ := v.customers.Create("Alice", "alice@example.com")
	res, _ := v.reservations.Create(c.ID, h.ID, "2026-07-01", "2026-07-05")

	rec := v.request(t, http.MethodDelete, "/v1/reservations/"+res.ID, "", v.handler.Cancel, "id", res.ID)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	ev := v.waitEvent(t)
	if ev.Type != queue.EventReservationCancelled || ev.ReservationID != res.ID {
		t.Fatalf("event = %+v", ev)
	}

	rec = v.request(t, http.MethodDelete, "/v1/reservations/"+res.ID, "", v.handler.Cancel, "id", res.ID)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second cancel status = %d, want 404", rec.Code)
	}
}

func TestNilPublisherDisablesEvents(t *testing.T) {
	v := newEnv(t)
	v.handler = NewReservationHandler(v.reservations, v.hotels, nil)
	h, _ := v.hotels.Create("Grand Palace", "100 Main Street", 10)
	c, _ := v.customers.Create("Alice", "alice@example.com")

	body := `{"customer_id":"` + c.ID + `","hotel_id":"` + h.ID + `","check_in":"2026-07-01","check_out":"2026-07-05"}`
	rec := v.request(t, http.MethodPost, "/v1/reservations", body, v.handler.Create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
}
