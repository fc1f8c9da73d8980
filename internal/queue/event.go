// Package queue defines the reservation lifecycle events exchanged
// over the message broker and the background consumer that records
// them.
package queue

// Event types carried in ReservationEvent.Type.
const (
	EventReservationBooked    = "reservation.booked"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is published when a reservation is successfully
// created or cancelled.  It carries enough information for downstream
// consumers to log or notify without reloading the collection files.
// Fields that are unknown at cancellation time (customer, dates) are
// simply left empty there.
type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id,omitempty"`
	HotelID       string `json:"hotel_id"`
	HotelName     string `json:"hotel_name,omitempty"`
	CheckIn       string `json:"check_in,omitempty"`
	CheckOut      string `json:"check_out,omitempty"`
	RoomsLeft     int    `json:"rooms_left"`
	OccurredAt    string `json:"occurred_at"`
}
