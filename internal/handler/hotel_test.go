package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ivnsm/hotel-reservation/internal/model"
)

func TestHotelCreateEndpoint(t *testing.T) {
	v := newEnv(t)
	h := NewHotelHandler(v.hotels)

	rec := v.request(t, http.MethodPost, "/v1/hotels",
		`{"name":"Grand Palace","address":"100 Main Street","total_rooms":50}`, h.Create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var hotel model.Hotel
	if err := json.Unmarshal(rec.Body.Bytes(), &hotel); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if hotel.RoomsAvailable != 50 {
		t.Fatalf("rooms_available = %d, want 50", hotel.RoomsAvailable)
	}
}

func TestHotelCreateEndpointRejectsInvalid(t *testing.T) {
	v := newEnv(t)
	h := NewHotelHandler(v.hotels)

	rec := v.request(t, http.MethodPost, "/v1/hotels",
		`{"name":"","address":"100 Main Street","total_rooms":50}`, h.Create)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHotelUpdateEndpointFieldMap(t *testing.T) {
	v := newEnv(t)
	created, _ := v.hotels.Create("Old Name", "Old Address", 10)
	h := NewHotelHandler(v.hotels)

	// Unknown fields pass through to the registry, which warns and
	// ignores them instead of failing the request.
	rec := v.request(t, http.MethodPatch, "/v1/hotels/"+created.ID,
		`{"name":"New Name","stars":5}`, h.Update, "id", created.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var hotel model.Hotel
	if err := json.Unmarshal(rec.Body.Bytes(), &hotel); err != nil {
		t.Fatal(err)
	}
	if hotel.Name != "New Name" || hotel.Address != "Old Address" {
		t.Fatalf("updated hotel = %+v", hotel)
	}
}

func TestHotelUpdateEndpointValidationFailure(t *testing.T) {
	v := newEnv(t)
	created, _ := v.hotels.Create("Grand Palace", "100 Main Street", 10)
	h := NewHotelHandler(v.hotels)

	rec := v.request(t, http.MethodPatch, "/v1/hotels/"+created.ID,
		`{"total_rooms":0}`, h.Update, "id", created.ID)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	got, _ := v.hotels.Get(created.ID)
	if got.TotalRooms != 10 {
		t.Fatalf("failed update mutated the hotel: %+v", got)
	}
}

func TestHotelGetEndpointNotFound(t *testing.T) {
	v := newEnv(t)
	h := NewHotelHandler(v.hotels)
	rec := v.request(t, http.MethodGet, "/v1/hotels/ghost", "", h.Get, "id", "ghost")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHotelDeleteEndpoint(t *testing.T) {
	v := newEnv(t)
	created, _ := v.hotels.Create("Grand Palace", "100 Main Street", 10)
	h := NewHotelHandler(v.hotels)

	rec := v.request(t, http.MethodDelete, "/v1/hotels/"+created.ID, "", h.Delete, "id", created.ID)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	rec = v.request(t, http.MethodDelete, "/v1/hotels/"+created.ID, "", h.Delete, "id", created.ID)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}
