// Package seed writes example collections so the console and the API
// have something to show on a fresh installation.
package seed

import (
	"path/filepath"

	"github.com/ivnsm/hotel-reservation/internal/model"
	"github.com/ivnsm/hotel-reservation/internal/store"
)

var hotels = []model.Hotel{
	{ID: "h001", Name: "Grand Palace Hotel", Address: "100 Main Street, New York, NY", TotalRooms: 50, RoomsAvailable: 48},
	{ID: "h002", Name: "Ocean Breeze Resort", Address: "200 Beach Blvd, Miami, FL", TotalRooms: 30, RoomsAvailable: 30},
	{ID: "h003", Name: "Mountain View Inn", Address: "5 Summit Road, Denver, CO", TotalRooms: 20, RoomsAvailable: 15},
}

var customers = []model.Customer{
	{ID: "c001", Name: "Alice Johnson", Email: "alice@example.com"},
	{ID: "c002", Name: "Bob Smith", Email: "bob@example.com"},
	{ID: "c003", Name: "Carol White", Email: "carol@example.com"},
}

var reservations = []model.Reservation{
	{ID: "r001", CustomerID: "c001", HotelID: "h001", CheckIn: "2026-03-10", CheckOut: "2026-03-15"},
	{ID: "r002", CustomerID: "c002", HotelID: "h001", CheckIn: "2026-04-01", CheckOut: "2026-04-05"},
}

// Run writes the three sample collections into dataDir, creating the
// directory when needed.  Existing collection files are overwritten.
func Run(dataDir string) error {
	if err := store.Save(filepath.Join(dataDir, "hotels.json"), hotels); err != nil {
		return err
	}
	if err := store.Save(filepath.Join(dataDir, "customers.json"), customers); err != nil {
		return err
	}
	return store.Save(filepath.Join(dataDir, "reservations.json"), reservations)
}
