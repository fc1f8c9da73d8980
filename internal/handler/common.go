package handler

import (
	"errors"
	"net/http"

	"github.com/ivnsm/hotel-reservation/internal/model"
	"github.com/ivnsm/hotel-reservation/internal/registry"
)

// errorStatus maps a registry failure to its HTTP status code:
// validation problems are the client's fault (400), missing
// identifiers are 404, an exhausted hotel is a conflict (409), and
// anything else (storage write failures) is a 500.
func errorStatus(err error) int {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, registry.ErrHotelNotFound),
		errors.Is(err, registry.ErrCustomerNotFound),
		errors.Is(err, registry.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrNoRoomsAvailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
