package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for check-in and
// check-out values, both in the API and in the persisted records.
const DateLayout = "2006-01-02"

// Reservation links a customer to a hotel for a date window.  Its
// existence implies exactly one room was taken from the hotel's
// availability when it was created; cancelling it gives that room
// back.  A reservation that has been cancelled is simply removed from
// the collection, no tombstone is kept.
//
// Fields:
//  ID         – unique, immutable identifier.
//  CustomerID – customer holding the reservation.
//  HotelID    – hotel being booked.
//  CheckIn    – arrival date (YYYY-MM-DD).
//  CheckOut   – departure date, strictly after CheckIn.
type Reservation struct {
	ID         string `json:"reservation_id"` // record key
	CustomerID string `json:"customer_id"`    // customer reference
	HotelID    string `json:"hotel_id"`       // hotel reference
	CheckIn    string `json:"check_in"`       // arrival date
	CheckOut   string `json:"check_out"`      // departure date
}

// NewReservation builds a reservation with a fresh identifier,
// validating the result before returning it.
func NewReservation(customerID, hotelID, checkIn, checkOut string) (*Reservation, error) {
	r := &Reservation{
		ID:         NewID(),
		CustomerID: customerID,
		HotelID:    hotelID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the reservation invariants: both references present,
// both dates valid calendar dates, and check-out strictly after
// check-in.  Overlap between reservations is deliberately not checked;
// availability is a counter, not a calendar.
func (r *Reservation) Validate() error {
	if r.ID == "" {
		return &ValidationError{Reason: "reservation identifier is required"}
	}
	if r.CustomerID == "" {
		return &ValidationError{Reason: "customer_id is required"}
	}
	if r.HotelID == "" {
		return &ValidationError{Reason: "hotel_id is required"}
	}
	ci, err := time.Parse(DateLayout, r.CheckIn)
	if err != nil {
		return &ValidationError{Reason: "check_in must be a valid date (YYYY-MM-DD)"}
	}
	co, err := time.Parse(DateLayout, r.CheckOut)
	if err != nil {
		return &ValidationError{Reason: "check_out must be a valid date (YYYY-MM-DD)"}
	}
	if !co.After(ci) {
		return &ValidationError{Reason: "check_out must be after check_in"}
	}
	return nil
}

// String renders the reservation for console output.
func (r *Reservation) String() string {
	return fmt.Sprintf("Reservation(%s): customer=%s hotel=%s [%s -> %s]",
		r.ID, r.CustomerID, r.HotelID, r.CheckIn, r.CheckOut)
}
