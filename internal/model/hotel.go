package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Hotel represents a property whose rooms can be booked through the
// reservation coordinator.  Room inventory is tracked as a plain
// counter: RoomsAvailable is decremented when a reservation takes a
// room and incremented when one is cancelled.  This struct is the
// record shape persisted in the hotels collection file.
//
// Fields:
//  ID             – unique, immutable identifier.
//  Name           – display name of the hotel.
//  Address        – physical address.
//  TotalRooms     – total number of rooms (positive).
//  RoomsAvailable – rooms currently free, always in [0, TotalRooms].
type Hotel struct {
	ID             string `json:"hotel_id"`        // record key
	Name           string `json:"name"`            // display name
	Address        string `json:"address"`         // physical address
	TotalRooms     int    `json:"total_rooms"`     // capacity
	RoomsAvailable int    `json:"rooms_available"` // free rooms
}

// NewHotel builds a hotel with a fresh identifier and every room
// available, validating the result before returning it.
func NewHotel(name, address string, totalRooms int) (*Hotel, error) {
	h := &Hotel{
		ID:             NewID(),
		Name:           name,
		Address:        address,
		TotalRooms:     totalRooms,
		RoomsAvailable: totalRooms,
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// UnmarshalJSON decodes a stored hotel record.  When the record omits
// rooms_available, the hotel is treated as fully vacant, matching the
// default applied at creation time.  Unknown fields are dropped.
func (h *Hotel) UnmarshalJSON(data []byte) error {
	var rec struct {
		ID             string `json:"hotel_id"`
		Name           string `json:"name"`
		Address        string `json:"address"`
		TotalRooms     int    `json:"total_rooms"`
		RoomsAvailable *int   `json:"rooms_available"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	h.ID = rec.ID
	h.Name = rec.Name
	h.Address = rec.Address
	h.TotalRooms = rec.TotalRooms
	if rec.RoomsAvailable != nil {
		h.RoomsAvailable = *rec.RoomsAvailable
	} else {
		h.RoomsAvailable = rec.TotalRooms
	}
	return nil
}

// Validate checks every hotel invariant and returns a ValidationError
// describing the first violation found.
func (h *Hotel) Validate() error {
	if h.ID == "" {
		return &ValidationError{Reason: "hotel identifier is required"}
	}
	if strings.TrimSpace(h.Name) == "" {
		return &ValidationError{Reason: "hotel name must be a non-empty string"}
	}
	if strings.TrimSpace(h.Address) == "" {
		return &ValidationError{Reason: "hotel address must be a non-empty string"}
	}
	if h.TotalRooms <= 0 {
		return &ValidationError{Reason: "total_rooms must be a positive integer"}
	}
	if h.RoomsAvailable < 0 {
		return &ValidationError{Reason: "rooms_available cannot be negative"}
	}
	if h.RoomsAvailable > h.TotalRooms {
		return &ValidationError{Reason: "rooms_available cannot exceed total_rooms"}
	}
	return nil
}

// String renders the hotel for console output.
func (h *Hotel) String() string {
	return fmt.Sprintf("Hotel(%s): %s, %s [%d/%d available]",
		h.ID, h.Name, h.Address, h.RoomsAvailable, h.TotalRooms)
}
