package main // Entry point for the interactive console

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ivnsm/hotel-reservation/internal/config"
	"github.com/ivnsm/hotel-reservation/internal/console"
	"github.com/ivnsm/hotel-reservation/internal/registry"
)

func main() {
	_ = godotenv.Load()
	dataDir := config.DataDir()

	hotels := registry.NewHotelRegistry(filepath.Join(dataDir, "hotels.json"))
	customers := registry.NewCustomerRegistry(filepath.Join(dataDir, "customers.json"))
	reservations := registry.NewReservationRegistry(filepath.Join(dataDir, "reservations.json"), hotels, customers)

	console.New(hotels, customers, reservations, os.Stdin, os.Stdout).Run()
}
