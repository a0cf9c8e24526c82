package main

import (
	"log"

	"github.com/joho/godotenv"

	"voyago/internal/app"
)

func main() {
	// Credentials usually live in .env during local development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ voyago failed to start: %v", err)
	}
}
