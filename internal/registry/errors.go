// Package registry contains the three entity registries: hotels,
// customers and reservations.  Each registry owns one in-memory
// collection and is the sole writer of its backing collection file.
// This file defines the sentinel errors shared by the registries so
// that higher layers such as the HTTP handlers and the console can
// distinguish failure cases.  Validation failures are reported as
// *model.ValidationError instead and carry their own reason text.
package registry

import "errors"

// ErrHotelNotFound is returned when a hotel identifier does not match
// any record in the hotel collection.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrCustomerNotFound is returned when a customer identifier does not
// match any record in the customer collection.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrReservationNotFound is returned when a reservation identifier
// does not match any record in the reservation collection.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrNoRoomsAvailable is returned by ReserveRoom when the hotel has no
// free rooms left.  The availability counter is left untouched.
var ErrNoRoomsAvailable = errors.New("no rooms available")

// ErrAllRoomsFree is returned by ReleaseRoom when every room is
// already available.  Releasing past capacity would mean a room was
// given back that was never taken, so the counter is left untouched.
var ErrAllRoomsFree = errors.New("all rooms already available")
