package main // Entry point for the sample data generator

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ivnsm/hotel-reservation/internal/config"
	"github.com/ivnsm/hotel-reservation/internal/seed"
)

func main() {
	_ = godotenv.Load()
	dataDir := config.DataDir()
	if err := seed.Run(dataDir); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seed: wrote sample collections to %s", dataDir)
}
