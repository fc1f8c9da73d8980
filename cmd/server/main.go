package main // Entry point for the HTTP API server

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ivnsm/hotel-reservation/internal/config"
	"github.com/ivnsm/hotel-reservation/internal/handler"
	"github.com/ivnsm/hotel-reservation/internal/middleware"
	"github.com/ivnsm/hotel-reservation/internal/queue"
	"github.com/ivnsm/hotel-reservation/internal/registry"
	"github.com/ivnsm/hotel-reservation/internal/router"
	queue_publisher "github.com/ivnsm/hotel-reservation/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// The three registries share one data directory; the reservation
	// coordinator holds references to the other two for cross-checks
	// and inventory accounting.
	hotels := registry.NewHotelRegistry(filepath.Join(cfg.DataDir, "hotels.json"))
	customers := registry.NewCustomerRegistry(filepath.Join(cfg.DataDir, "customers.json"))
	reservations := registry.NewReservationRegistry(filepath.Join(cfg.DataDir, "reservations.json"), hotels, customers)

	if cfg.ConsumerEnabled {
		go func() {
			if err := queue.StartReservationConsumer(); err != nil {
				log.Printf("reservation-consumer: stopped: %v", err)
			}
		}()
	}

	cache := middleware.NewResponseCache(config.LoadCacheConfig(), config.NewRedisClient())

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e,
		handler.NewHotelHandler(hotels),
		handler.NewCustomerHandler(customers),
		handler.NewReservationHandler(reservations, hotels, queue_publisher.PublishReservationEvent),
		cache,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
